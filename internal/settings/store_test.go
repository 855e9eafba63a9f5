package settings

import (
	"testing"

	"settingsd/internal/catalog"
	"settingsd/pkg/types"
)

func newTestStore() *Store {
	return New(catalog.DefaultSettings(), catalog.ChatModels(), catalog.EmbeddingModels())
}

func TestStore_GetReturnsSnapshot(t *testing.T) {
	s := newTestStore()
	a := s.Get()
	a.ActiveModels[0].Name = "mutated"
	b := s.Get()
	if b.ActiveModels[0].Name == "mutated" {
		t.Fatalf("Get must not expose the stored slices")
	}
}

func TestStore_SetOverlaysAndReconciles(t *testing.T) {
	s := newTestStore()
	temp := 0.1
	s.Set(Patch{
		Temperature: &temp,
		ActiveModels: []types.ModelEntry{
			{Name: "my-model", Provider: "ollama", Enabled: true},
		},
	})
	got := s.Get()
	if got.Temperature != 0.1 {
		t.Fatalf("temperature = %v", got.Temperature)
	}
	// Untouched fields survive.
	if got.MaxTokens != catalog.DefaultMaxTokens {
		t.Fatalf("maxTokens changed unexpectedly: %v", got.MaxTokens)
	}
	// Core built-ins re-enter the list even though the patch omitted them.
	var names []string
	for _, m := range got.ActiveModels {
		names = append(names, m.Name)
	}
	core := 0
	for _, m := range got.ActiveModels {
		if m.Core {
			core++
		}
	}
	if core == 0 {
		t.Fatalf("core models missing after set: %v", names)
	}
	if names[len(names)-1] != "my-model" {
		t.Fatalf("user model not appended after core entries: %v", names)
	}
}

func TestStore_NotificationOrderAndVisibility(t *testing.T) {
	s := newTestStore()
	var order []string
	s.Subscribe(func() {
		order = append(order, "L1")
		if s.Get().Temperature != 0.3 {
			t.Fatalf("L1 observed a stale value")
		}
	})
	s.Subscribe(func() {
		order = append(order, "L2")
		if s.Get().Temperature != 0.3 {
			t.Fatalf("L2 observed a stale value")
		}
	})
	temp := 0.3
	s.Set(Patch{Temperature: &temp})
	if len(order) != 2 || order[0] != "L1" || order[1] != "L2" {
		t.Fatalf("notification order = %v", order)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := newTestStore()
	calls := 0
	unsub := s.Subscribe(func() { calls++ })
	keep := 0
	s.Subscribe(func() { keep++ })

	temp := 0.2
	s.Set(Patch{Temperature: &temp})
	unsub()
	unsub() // second call is a no-op
	s.Set(Patch{Temperature: &temp})

	if calls != 1 {
		t.Fatalf("unsubscribed listener called %d times", calls)
	}
	if keep != 2 {
		t.Fatalf("remaining listener called %d times, want 2", keep)
	}
	if s.ListenerCount() != 1 {
		t.Fatalf("listener count = %d", s.ListenerCount())
	}
}

func TestStore_ResetRestoresDefaultsAndEnablesBuiltIns(t *testing.T) {
	s := newTestStore()
	temp := 0.05
	s.Set(Patch{
		Temperature: &temp,
		ActiveModels: []types.ModelEntry{
			{Name: "custom", Provider: "ollama", Enabled: true},
		},
	})
	notified := 0
	s.Subscribe(func() { notified++ })
	s.Reset()
	if notified != 1 {
		t.Fatalf("reset did not notify")
	}
	got := s.Get()
	if got.Temperature != catalog.DefaultTemperature {
		t.Fatalf("temperature not reset: %v", got.Temperature)
	}
	if len(got.ActiveModels) != len(catalog.ChatModels()) {
		t.Fatalf("reset should restore the full chat catalog: %+v", got.ActiveModels)
	}
	for _, m := range got.ActiveModels {
		if !m.Enabled || !m.IsBuiltIn {
			t.Fatalf("built-in entry not enabled after reset: %+v", m)
		}
	}
	if len(got.ActiveEmbeddingModels) != len(catalog.EmbeddingModels()) {
		t.Fatalf("reset should restore the embedding catalog: %+v", got.ActiveEmbeddingModels)
	}
}

func TestStore_NewWithConfigSeedsInitialValue(t *testing.T) {
	initial := catalog.DefaultSettings()
	initial.Temperature = 0.33
	initial.ActiveModels = []types.ModelEntry{
		{Name: "persisted", Provider: "ollama", Enabled: true},
	}
	s := NewWithConfig(StoreConfig{
		Defaults:         catalog.DefaultSettings(),
		Initial:          &initial,
		ChatCatalog:      catalog.ChatModels(),
		EmbeddingCatalog: catalog.EmbeddingModels(),
	})
	got := s.Get()
	if got.Temperature != 0.33 {
		t.Fatalf("initial value not seeded: %+v", got)
	}
	// Seeded lists are reconciled too.
	if !got.ActiveModels[0].Core {
		t.Fatalf("core models not seeded ahead of persisted entry: %+v", got.ActiveModels)
	}
	// Reset still restores pristine defaults, not the initial value.
	s.Reset()
	if s.Get().Temperature != catalog.DefaultTemperature {
		t.Fatalf("reset restored the initial value instead of defaults")
	}
}

func TestStore_NewReconcilesInitialValue(t *testing.T) {
	// A defaults value missing core models still yields them after New.
	defs := catalog.DefaultSettings()
	defs.ActiveModels = nil
	defs.ActiveEmbeddingModels = nil
	s := New(defs, catalog.ChatModels(), catalog.EmbeddingModels())
	got := s.Get()
	if len(got.ActiveModels) == 0 || !got.ActiveModels[0].Core {
		t.Fatalf("core chat models not seeded: %+v", got.ActiveModels)
	}
	if len(got.ActiveEmbeddingModels) == 0 || !got.ActiveEmbeddingModels[0].Core {
		t.Fatalf("core embedding models not seeded: %+v", got.ActiveEmbeddingModels)
	}
}
