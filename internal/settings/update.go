package settings

import (
	"time"

	"settingsd/pkg/types"
)

// Update sets a single field addressed by its JSON key and delegates to
// Set. Unknown keys and dynamically mistyped values are errors; they
// fall outside the typed write contract.
func (s *Store) Update(key string, value any) error {
	var p Patch
	switch key {
	case "openAiApiKey":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.OpenAIAPIKey = &v
	case "anthropicApiKey":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.AnthropicAPIKey = &v
	case "ollamaBaseUrl":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.OllamaBaseURL = &v
	case "temperature":
		v, ok := asFloat(value)
		if !ok {
			return errBadValue(key, "number")
		}
		p.Temperature = &v
	case "topP":
		v, ok := asFloat(value)
		if !ok {
			return errBadValue(key, "number")
		}
		p.TopP = &v
	case "maxTokens":
		v, ok := asInt(value)
		if !ok {
			return errBadValue(key, "integer")
		}
		p.MaxTokens = &v
	case "contextWindow":
		v, ok := asInt(value)
		if !ok {
			return errBadValue(key, "integer")
		}
		p.ContextWindow = &v
	case "toolsEnabled":
		v, ok := value.(bool)
		if !ok {
			return errBadValue(key, "boolean")
		}
		p.ToolsEnabled = &v
	case "telemetryEnabled":
		v, ok := value.(bool)
		if !ok {
			return errBadValue(key, "boolean")
		}
		p.TelemetryEnabled = &v
	case "workspacePath":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.WorkspacePath = &v
	case "rulesPath":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.RulesPath = &v
	case "userSystemPrompt":
		v, ok := value.(string)
		if !ok {
			return errBadValue(key, "string")
		}
		p.UserSystemPrompt = &v
	case "commandToggles":
		v, ok := value.([]types.CommandToggle)
		if !ok {
			return errBadValue(key, "command toggle list")
		}
		p.CommandToggles = v
	case "promptUsage":
		v, ok := value.(map[string]time.Time)
		if !ok {
			return errBadValue(key, "timestamp map")
		}
		p.PromptUsage = v
	case "activeModels":
		v, ok := value.([]types.ModelEntry)
		if !ok {
			return errBadValue(key, "model list")
		}
		p.ActiveModels = v
	case "activeEmbeddingModels":
		v, ok := value.([]types.ModelEntry)
		if !ok {
			return errBadValue(key, "model list")
		}
		p.ActiveEmbeddingModels = v
	default:
		return unknownKeyError{key: key}
	}
	s.Set(p)
	return nil
}

// asFloat accepts the numeric shapes JSON decoding produces.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		// JSON numbers arrive as float64; reject fractions.
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
