package settings

import (
	"time"

	"settingsd/pkg/types"
)

// Patch describes a partial settings write. Nil fields are left
// untouched; non-nil fields replace the stored value wholesale (slices
// and maps are not merged element-wise). JSON tags line up with
// types.Settings so a partial settings document decodes directly into a
// Patch.
type Patch struct {
	OpenAIAPIKey    *string `json:"openAiApiKey,omitempty"`
	AnthropicAPIKey *string `json:"anthropicApiKey,omitempty"`
	OllamaBaseURL   *string `json:"ollamaBaseUrl,omitempty"`

	Temperature   *float64 `json:"temperature,omitempty"`
	TopP          *float64 `json:"topP,omitempty"`
	MaxTokens     *int     `json:"maxTokens,omitempty"`
	ContextWindow *int     `json:"contextWindow,omitempty"`

	ToolsEnabled     *bool `json:"toolsEnabled,omitempty"`
	TelemetryEnabled *bool `json:"telemetryEnabled,omitempty"`

	WorkspacePath *string `json:"workspacePath,omitempty"`
	RulesPath     *string `json:"rulesPath,omitempty"`

	CommandToggles []types.CommandToggle `json:"commandToggles,omitempty"`
	PromptUsage    map[string]time.Time  `json:"promptUsage,omitempty"`

	UserSystemPrompt *string `json:"userSystemPrompt,omitempty"`

	ActiveModels          []types.ModelEntry `json:"activeModels,omitempty"`
	ActiveEmbeddingModels []types.ModelEntry `json:"activeEmbeddingModels,omitempty"`
}

// apply overlays p onto s and returns the result. Model lists are not
// reconciled here; the store does that on every write.
func (p Patch) apply(s types.Settings) types.Settings {
	if p.OpenAIAPIKey != nil {
		s.OpenAIAPIKey = *p.OpenAIAPIKey
	}
	if p.AnthropicAPIKey != nil {
		s.AnthropicAPIKey = *p.AnthropicAPIKey
	}
	if p.OllamaBaseURL != nil {
		s.OllamaBaseURL = *p.OllamaBaseURL
	}
	if p.Temperature != nil {
		s.Temperature = *p.Temperature
	}
	if p.TopP != nil {
		s.TopP = *p.TopP
	}
	if p.MaxTokens != nil {
		s.MaxTokens = *p.MaxTokens
	}
	if p.ContextWindow != nil {
		s.ContextWindow = *p.ContextWindow
	}
	if p.ToolsEnabled != nil {
		s.ToolsEnabled = *p.ToolsEnabled
	}
	if p.TelemetryEnabled != nil {
		s.TelemetryEnabled = *p.TelemetryEnabled
	}
	if p.WorkspacePath != nil {
		s.WorkspacePath = *p.WorkspacePath
	}
	if p.RulesPath != nil {
		s.RulesPath = *p.RulesPath
	}
	if p.CommandToggles != nil {
		s.CommandToggles = append([]types.CommandToggle(nil), p.CommandToggles...)
	}
	if p.PromptUsage != nil {
		usage := make(map[string]time.Time, len(p.PromptUsage))
		for k, v := range p.PromptUsage {
			usage[k] = v
		}
		s.PromptUsage = usage
	}
	if p.UserSystemPrompt != nil {
		s.UserSystemPrompt = *p.UserSystemPrompt
	}
	if p.ActiveModels != nil {
		s.ActiveModels = types.CloneModels(p.ActiveModels)
	}
	if p.ActiveEmbeddingModels != nil {
		s.ActiveEmbeddingModels = types.CloneModels(p.ActiveEmbeddingModels)
	}
	return s
}
