package settings

import "settingsd/pkg/types"

// StoreConfig encapsulates everything needed to construct a Store.
type StoreConfig struct {
	// Defaults is the pristine configuration Reset restores.
	Defaults types.Settings
	// Initial optionally seeds the store with a persisted value instead
	// of Defaults (e.g. what the persistence collaborator loaded).
	Initial *types.Settings
	// Built-in catalogs every write reconciles against.
	ChatCatalog      []types.ModelEntry
	EmbeddingCatalog []types.ModelEntry
}

// NewWithConfig constructs a Store from StoreConfig. The initial value
// passes through the merger exactly like any other write.
func NewWithConfig(cfg StoreConfig) *Store {
	s := &Store{
		defaults:  cfg.Defaults.Clone(),
		chat:      types.CloneModels(cfg.ChatCatalog),
		embedding: types.CloneModels(cfg.EmbeddingCatalog),
	}
	v := cfg.Defaults.Clone()
	if cfg.Initial != nil {
		v = cfg.Initial.Clone()
	}
	s.value = s.reconciled(v)
	return s
}
