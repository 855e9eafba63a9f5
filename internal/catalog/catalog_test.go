package catalog

import "testing"

func TestCatalogsReturnCopies(t *testing.T) {
	a := ChatModels()
	a[0].Name = "mutated"
	if ChatModels()[0].Name == "mutated" {
		t.Fatalf("ChatModels must return a copy")
	}
	b := EmbeddingModels()
	b[0].Name = "mutated"
	if EmbeddingModels()[0].Name == "mutated" {
		t.Fatalf("EmbeddingModels must return a copy")
	}
}

func TestCatalogShape(t *testing.T) {
	coreChat := 0
	for _, m := range ChatModels() {
		if !m.IsBuiltIn {
			t.Fatalf("catalog entry missing built-in flag: %+v", m)
		}
		if m.Core {
			coreChat++
		}
	}
	if coreChat == 0 {
		t.Fatalf("chat catalog has no core models")
	}
	coreEmb := 0
	for _, m := range EmbeddingModels() {
		if m.Core {
			coreEmb++
		}
	}
	if coreEmb == 0 {
		t.Fatalf("embedding catalog has no core models")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Temperature != DefaultTemperature || s.MaxTokens != DefaultMaxTokens {
		t.Fatalf("unexpected tuning defaults: %+v", s)
	}
	if len(s.ActiveModels) != len(ChatModels()) {
		t.Fatalf("defaults missing chat catalog")
	}
	for _, m := range s.ActiveModels {
		if !m.Enabled {
			t.Fatalf("default entry not enabled: %+v", m)
		}
	}
	if len(s.CommandToggles) == 0 {
		t.Fatalf("defaults missing command toggles")
	}
}
