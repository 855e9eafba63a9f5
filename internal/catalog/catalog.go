// Package catalog holds the built-in model catalogs and default
// configuration shipped with the host. Catalog order is meaningful:
// the merger preserves it for core entries.
package catalog

import "settingsd/pkg/types"

// DefaultSystemPrompt is used whenever the user prompt is empty.
const DefaultSystemPrompt = "You are a careful coding assistant. Prefer small, reviewable changes and explain tradeoffs briefly."

// chatModels is the authoritative built-in chat catalog.
// Core entries must never be dropped from a merged active list.
var chatModels = []types.ModelEntry{
	{Name: "gpt-4o", Provider: "openai", Core: true, IsBuiltIn: true, Enabled: true},
	{Name: "claude-sonnet-4-20250514", Provider: "anthropic", Core: true, IsBuiltIn: true, Enabled: true},
	{Name: "gpt-4o-mini", Provider: "openai", IsBuiltIn: true, Enabled: true},
	{Name: "claude-3-5-haiku-20241022", Provider: "anthropic", IsBuiltIn: true, Enabled: true},
	{Name: "llama3.1:8b", Provider: "ollama", IsBuiltIn: true, Enabled: true, BaseURL: "http://localhost:11434"},
}

// embeddingModels is the authoritative built-in embedding catalog.
var embeddingModels = []types.ModelEntry{
	{Name: "text-embedding-3-small", Provider: "openai", Core: true, IsBuiltIn: true, Enabled: true},
	{Name: "text-embedding-3-large", Provider: "openai", IsBuiltIn: true, Enabled: true},
	{Name: "nomic-embed-text", Provider: "ollama", IsBuiltIn: true, Enabled: true, BaseURL: "http://localhost:11434"},
}

// ChatModels returns a copy of the built-in chat catalog.
func ChatModels() []types.ModelEntry { return types.CloneModels(chatModels) }

// EmbeddingModels returns a copy of the built-in embedding catalog.
func EmbeddingModels() []types.ModelEntry { return types.CloneModels(embeddingModels) }
