// Package settings holds the configuration core: an observable store for
// the full settings value plus the pure functions every write passes
// through. It is structured into small files by concern:
//
//   - store.go: Store type with Get/Set/Update/Reset/Subscribe.
//   - patch.go: Patch type describing a partial write.
//   - merge.go: Reconcile, the active-model merge against built-in catalogs.
//   - sanitize.go: Raw and Sanitize, numeric re-coercion at the load boundary.
//   - prompt.go: EffectivePrompt default fallback.
//
// The store is the single source of truth; everything else here is a pure
// function over a settings value. External packages should mutate only
// through Store methods so model lists are always reconciled before being
// stored.
package settings
