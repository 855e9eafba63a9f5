package types

import "time"

// ModelEntry represents one configured model endpoint.
type ModelEntry struct {
	// Model name as known by its provider.
	// example: gpt-4o
	Name string `json:"name" example:"gpt-4o"`
	// Provider identifier (openai, anthropic, ollama, ...).
	// example: openai
	Provider string `json:"provider" example:"openai"`
	// Core marks a model the host always requires in the active list.
	// example: true
	Core bool `json:"core" example:"true"`
	// IsBuiltIn marks an entry that originated from (or was ever merged
	// with) the built-in catalog rather than being hand-added.
	// example: true
	IsBuiltIn bool `json:"isBuiltIn" example:"true"`
	// Enabled controls whether the entry is currently selectable.
	// example: true
	Enabled bool `json:"enabled" example:"true"`
	// Optional provider endpoint override. Passed through untouched.
	// example: https://api.openai.com/v1
	BaseURL string `json:"baseUrl,omitempty" example:"https://api.openai.com/v1"`
	// Optional provider API version. Passed through untouched.
	// example: 2024-06-01
	APIVersion string `json:"apiVersion,omitempty" example:"2024-06-01"`
	// Provider-specific connection parameters. Opaque pass-through.
	Extra map[string]any `json:"extra,omitempty"`
}

// Identity returns the composite key distinguishing one entry from another.
func (m ModelEntry) Identity() string { return m.Name + "\x00" + m.Provider }

// CommandToggle records whether a single host command is enabled.
// Toggles are kept as an ordered sequence, not a map, so the host's
// command ordering survives round-trips through persistence.
type CommandToggle struct {
	// Command identifier.
	// example: generate_docs
	ID string `json:"id" example:"generate_docs"`
	// example: true
	Enabled bool `json:"enabled" example:"true"`
}

// Settings is the full configuration value held by the store.
// Treat returned values as read-only; mutate only through the store.
type Settings struct {
	// Provider credentials.
	OpenAIAPIKey    string `json:"openAiApiKey,omitempty"`
	AnthropicAPIKey string `json:"anthropicApiKey,omitempty"`
	// Local provider endpoint.
	// example: http://localhost:11434
	OllamaBaseURL string `json:"ollamaBaseUrl,omitempty" example:"http://localhost:11434"`

	// Numeric tuning parameters.
	// example: 0.7
	Temperature float64 `json:"temperature" example:"0.7"`
	// example: 0.9
	TopP float64 `json:"topP" example:"0.9"`
	// example: 4096
	MaxTokens int `json:"maxTokens" example:"4096"`
	// example: 128000
	ContextWindow int `json:"contextWindow" example:"128000"`

	// Feature toggles.
	ToolsEnabled     bool `json:"toolsEnabled"`
	TelemetryEnabled bool `json:"telemetryEnabled"`

	// File-path configuration.
	WorkspacePath string `json:"workspacePath,omitempty"`
	RulesPath     string `json:"rulesPath,omitempty"`

	// Per-command enablement, in host command order.
	CommandToggles []CommandToggle `json:"commandToggles,omitempty"`

	// Last-used timestamps keyed by prompt-usage key.
	PromptUsage map[string]time.Time `json:"promptUsage,omitempty"`

	// User-configured system prompt; empty means "use the default".
	UserSystemPrompt string `json:"userSystemPrompt,omitempty"`

	// Reconciled model lists. Always pass through the merger on write.
	ActiveModels          []ModelEntry `json:"activeModels"`
	ActiveEmbeddingModels []ModelEntry `json:"activeEmbeddingModels"`
}

// Clone returns a deep copy of s so callers can hold a snapshot without
// aliasing the store's slices and maps.
func (s Settings) Clone() Settings {
	out := s
	out.CommandToggles = append([]CommandToggle(nil), s.CommandToggles...)
	if s.PromptUsage != nil {
		out.PromptUsage = make(map[string]time.Time, len(s.PromptUsage))
		for k, v := range s.PromptUsage {
			out.PromptUsage[k] = v
		}
	}
	out.ActiveModels = CloneModels(s.ActiveModels)
	out.ActiveEmbeddingModels = CloneModels(s.ActiveEmbeddingModels)
	return out
}

// CloneModels copies a model list, including each entry's Extra map.
func CloneModels(in []ModelEntry) []ModelEntry {
	if in == nil {
		return nil
	}
	out := make([]ModelEntry, len(in))
	for i, m := range in {
		out[i] = m
		if m.Extra != nil {
			out[i].Extra = make(map[string]any, len(m.Extra))
			for k, v := range m.Extra {
				out[i].Extra[k] = v
			}
		}
	}
	return out
}
