package settings

import "settingsd/pkg/types"

// Reconcile merges a user's active-model list with the built-in catalog
// into one deduplicated list keyed by (name, provider) identity.
//
// Core catalog entries are seeded first, in catalog order, with Core
// forced true: they must never be silently dropped even if the user's
// stored list predates them. Non-core built-ins are not seeded; they
// enter the result only if present in existing (reset is the path that
// restores the full catalog). Existing entries then fold in, in list
// order: on an identity match the existing entry's fields win, except
// Core and IsBuiltIn which are OR'd with the seeded entry so provenance
// never regresses. Output preserves insertion order and the function is
// idempotent over its own output.
func Reconcile(existing, builtin []types.ModelEntry) []types.ModelEntry {
	type slot struct {
		entry types.ModelEntry
		pos   int
	}
	merged := make(map[string]slot, len(existing)+len(builtin))
	order := make([]string, 0, len(existing)+len(builtin))

	for _, b := range builtin {
		if !b.Core {
			continue
		}
		b.Core = true
		key := b.Identity()
		merged[key] = slot{entry: b, pos: len(order)}
		order = append(order, key)
	}

	for _, e := range existing {
		key := e.Identity()
		if prev, ok := merged[key]; ok {
			e.Core = e.Core || prev.entry.Core
			e.IsBuiltIn = e.IsBuiltIn || prev.entry.IsBuiltIn
			merged[key] = slot{entry: e, pos: prev.pos}
			continue
		}
		merged[key] = slot{entry: e, pos: len(order)}
		order = append(order, key)
	}

	out := make([]types.ModelEntry, len(order))
	for _, key := range order {
		s := merged[key]
		out[s.pos] = s.entry
	}
	return out
}
