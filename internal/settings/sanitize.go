package settings

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"settingsd/pkg/types"
)

// Raw mirrors types.Settings but leaves the numeric tuning fields
// untyped. Persisted configuration may have passed through a generic
// key/value store that stringifies numbers, so those fields must be
// re-coerced before the value can be trusted.
type Raw struct {
	OpenAIAPIKey    string `json:"openAiApiKey,omitempty"`
	AnthropicAPIKey string `json:"anthropicApiKey,omitempty"`
	OllamaBaseURL   string `json:"ollamaBaseUrl,omitempty"`

	Temperature   any `json:"temperature,omitempty"`
	TopP          any `json:"topP,omitempty"`
	MaxTokens     any `json:"maxTokens,omitempty"`
	ContextWindow any `json:"contextWindow,omitempty"`

	ToolsEnabled     bool `json:"toolsEnabled"`
	TelemetryEnabled bool `json:"telemetryEnabled"`

	WorkspacePath string `json:"workspacePath,omitempty"`
	RulesPath     string `json:"rulesPath,omitempty"`

	CommandToggles []types.CommandToggle `json:"commandToggles,omitempty"`
	PromptUsage    map[string]time.Time  `json:"promptUsage,omitempty"`

	UserSystemPrompt string `json:"userSystemPrompt,omitempty"`

	ActiveModels          []types.ModelEntry `json:"activeModels"`
	ActiveEmbeddingModels []types.ModelEntry `json:"activeEmbeddingModels"`
}

// Sanitize coerces the loosely-typed fields of raw into a typed settings
// value, substituting the corresponding field of defaults wherever
// coercion fails. It is total: any input yields a usable value.
func Sanitize(raw Raw, defaults types.Settings) types.Settings {
	out := types.Settings{
		OpenAIAPIKey:          raw.OpenAIAPIKey,
		AnthropicAPIKey:       raw.AnthropicAPIKey,
		OllamaBaseURL:         raw.OllamaBaseURL,
		ToolsEnabled:          raw.ToolsEnabled,
		TelemetryEnabled:      raw.TelemetryEnabled,
		WorkspacePath:         raw.WorkspacePath,
		RulesPath:             raw.RulesPath,
		CommandToggles:        raw.CommandToggles,
		PromptUsage:           raw.PromptUsage,
		UserSystemPrompt:      raw.UserSystemPrompt,
		ActiveModels:          raw.ActiveModels,
		ActiveEmbeddingModels: raw.ActiveEmbeddingModels,
	}
	out.Temperature = coerceFloat(raw.Temperature, defaults.Temperature)
	out.TopP = coerceFloat(raw.TopP, defaults.TopP)
	out.MaxTokens = coerceInt(raw.MaxTokens, defaults.MaxTokens)
	out.ContextWindow = coerceInt(raw.ContextWindow, defaults.ContextWindow)
	return out
}

// coerceFloat attempts numeric coercion of v, falling back to def when
// the value is absent, unparseable, or not a number.
func coerceFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case float32:
		return coerceFloat(float64(n), def)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		return coerceFloat(string(n), def)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return f
	default:
		return def
	}
}

func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case nil:
		return def
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return int(n)
	case json.Number:
		return coerceInt(string(n), def)
	case string:
		// Accept "42" and also float-shaped strings like "42.0".
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return int(f)
	default:
		return def
	}
}
