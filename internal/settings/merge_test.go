package settings

import (
	"reflect"
	"testing"

	"settingsd/pkg/types"
)

func entry(name, provider string, core, builtIn, enabled bool) types.ModelEntry {
	return types.ModelEntry{Name: name, Provider: provider, Core: core, IsBuiltIn: builtIn, Enabled: enabled}
}

func TestReconcile_CoreBuiltInWinsIdentity(t *testing.T) {
	existing := []types.ModelEntry{entry("gpt-x", "openai", false, false, true)}
	builtin := []types.ModelEntry{entry("gpt-x", "openai", true, true, true)}
	got := Reconcile(existing, builtin)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	want := entry("gpt-x", "openai", true, true, true)
	if !reflect.DeepEqual(got[0], want) {
		t.Fatalf("merged entry = %+v, want %+v", got[0], want)
	}
}

func TestReconcile_CoreNeverDropped(t *testing.T) {
	builtin := []types.ModelEntry{
		entry("core-a", "openai", true, true, true),
		entry("core-b", "anthropic", true, true, true),
	}
	// User's stored list predates both core models.
	got := Reconcile(nil, builtin)
	if len(got) != 2 {
		t.Fatalf("expected both core models, got %+v", got)
	}
	for i, m := range got {
		if !m.Core {
			t.Fatalf("entry %d lost core flag: %+v", i, m)
		}
	}
	// Catalog order preserved.
	if got[0].Name != "core-a" || got[1].Name != "core-b" {
		t.Fatalf("catalog order not preserved: %+v", got)
	}
}

func TestReconcile_NonCoreBuiltInsNotReAdded(t *testing.T) {
	builtin := []types.ModelEntry{
		entry("core-a", "openai", true, true, true),
		entry("optional-b", "openai", false, true, true),
	}
	got := Reconcile(nil, builtin)
	if len(got) != 1 || got[0].Name != "core-a" {
		t.Fatalf("non-core built-in should stay opt-in: %+v", got)
	}
}

func TestReconcile_NonCoreIdentityMatchKeptAsIs(t *testing.T) {
	existing := []types.ModelEntry{entry("optional-b", "openai", false, false, false)}
	builtin := []types.ModelEntry{
		entry("core-a", "openai", true, true, true),
		entry("optional-b", "openai", false, true, true),
	}
	got := Reconcile(existing, builtin)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %+v", got)
	}
	// Core forcing applies only to core built-ins; the entry matching a
	// non-core built-in keeps the user's fields, including Enabled=false.
	b := got[1]
	if b.Name != "optional-b" || b.Core || b.Enabled {
		t.Fatalf("non-core match not kept as-is: %+v", b)
	}
}

func TestReconcile_ExistingFieldsWinForCoreMatch(t *testing.T) {
	existing := []types.ModelEntry{{
		Name: "core-a", Provider: "openai", Enabled: false,
		BaseURL: "https://proxy.internal/v1",
		Extra:   map[string]any{"org": "team-7"},
	}}
	builtin := []types.ModelEntry{entry("core-a", "openai", true, true, true)}
	got := Reconcile(existing, builtin)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %+v", got)
	}
	m := got[0]
	if !m.Core || !m.IsBuiltIn {
		t.Fatalf("provenance flags regressed: %+v", m)
	}
	if m.Enabled || m.BaseURL != "https://proxy.internal/v1" || m.Extra["org"] != "team-7" {
		t.Fatalf("user fields not preserved: %+v", m)
	}
}

func TestReconcile_BuiltInMonotonic(t *testing.T) {
	// Once flagged built-in, an entry keeps that provenance even when the
	// catalog no longer carries it.
	existing := []types.ModelEntry{entry("old-model", "openai", false, true, true)}
	got := Reconcile(existing, nil)
	if len(got) != 1 || !got[0].IsBuiltIn {
		t.Fatalf("built-in provenance lost: %+v", got)
	}
}

func TestReconcile_IdentityUnique(t *testing.T) {
	existing := []types.ModelEntry{
		entry("m", "openai", false, false, true),
		entry("m", "openai", false, false, false), // duplicate identity
		entry("m", "ollama", false, false, true),  // same name, other provider
	}
	builtin := []types.ModelEntry{entry("m", "openai", true, true, true)}
	got := Reconcile(existing, builtin)
	seen := map[string]bool{}
	for _, m := range got {
		if seen[m.Identity()] {
			t.Fatalf("duplicate identity in output: %+v", got)
		}
		seen[m.Identity()] = true
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 unique identities, got %+v", got)
	}
	// Last duplicate wins the field values for an already-seen identity.
	if got[0].Enabled {
		t.Fatalf("expected later duplicate's fields to win: %+v", got[0])
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	existing := []types.ModelEntry{
		entry("gpt-x", "openai", false, false, true),
		entry("custom", "ollama", false, false, true),
		entry("old-model", "openai", false, true, false),
	}
	builtin := []types.ModelEntry{
		entry("core-a", "anthropic", true, true, true),
		entry("gpt-x", "openai", true, true, true),
		entry("optional-b", "openai", false, true, true),
	}
	once := Reconcile(existing, builtin)
	twice := Reconcile(once, builtin)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("reconcile not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestReconcile_OrderCoreFirstThenExisting(t *testing.T) {
	existing := []types.ModelEntry{
		entry("user-1", "ollama", false, false, true),
		entry("core-b", "anthropic", false, false, true),
		entry("user-2", "ollama", false, false, true),
	}
	builtin := []types.ModelEntry{
		entry("core-a", "openai", true, true, true),
		entry("core-b", "anthropic", true, true, true),
	}
	got := Reconcile(existing, builtin)
	var names []string
	for _, m := range got {
		names = append(names, m.Name)
	}
	want := []string{"core-a", "core-b", "user-1", "user-2"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}
