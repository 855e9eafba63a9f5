package catalog

import "settingsd/pkg/types"

// Documented defaults for the numeric tuning parameters. The sanitizer
// falls back to these when a persisted value cannot be coerced.
const (
	DefaultTemperature   = 0.7
	DefaultTopP          = 0.9
	DefaultMaxTokens     = 4096
	DefaultContextWindow = 128000
)

// DefaultSettings returns the configuration used at first start and on
// reset: tuning defaults plus both model lists populated from the
// built-in catalogs with every entry enabled.
func DefaultSettings() types.Settings {
	return types.Settings{
		OllamaBaseURL: "http://localhost:11434",
		Temperature:   DefaultTemperature,
		TopP:          DefaultTopP,
		MaxTokens:     DefaultMaxTokens,
		ContextWindow: DefaultContextWindow,
		ToolsEnabled:  true,
		CommandToggles: []types.CommandToggle{
			{ID: "explain_code", Enabled: true},
			{ID: "generate_docs", Enabled: true},
			{ID: "generate_tests", Enabled: true},
			{ID: "refactor", Enabled: false},
		},
		ActiveModels:          enableAll(ChatModels()),
		ActiveEmbeddingModels: enableAll(EmbeddingModels()),
	}
}

func enableAll(models []types.ModelEntry) []types.ModelEntry {
	for i := range models {
		models[i].Enabled = true
	}
	return models
}
