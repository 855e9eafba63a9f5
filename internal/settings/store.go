package settings

import (
	"sync"

	"settingsd/pkg/types"
)

// Store is the atomic, observable container for the settings value.
// Reads return snapshots, so concurrent readers are always safe; writes
// are expected to come from one logical writer at a time, but the mutex
// keeps even misuse memory-safe.
type Store struct {
	mu        sync.RWMutex
	value     types.Settings
	defaults  types.Settings
	chat      []types.ModelEntry
	embedding []types.ModelEntry

	listeners []listener
	nextID    uint64
}

type listener struct {
	id uint64
	fn func()
}

// New builds a store seeded with defaults. Both model lists of the
// initial value are reconciled against the given built-in catalogs.
func New(defaults types.Settings, chatCatalog, embeddingCatalog []types.ModelEntry) *Store {
	return NewWithConfig(StoreConfig{
		Defaults:         defaults,
		ChatCatalog:      chatCatalog,
		EmbeddingCatalog: embeddingCatalog,
	})
}

// Get returns a snapshot of the current settings value.
func (s *Store) Get() types.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value.Clone()
}

// Set overlays patch onto the current value, reconciles both model
// lists against the built-in catalogs, replaces the stored value and
// synchronously notifies every listener before returning.
func (s *Store) Set(patch Patch) {
	s.mu.Lock()
	s.value = s.reconciled(patch.apply(s.value))
	fns := s.snapshotListeners()
	s.mu.Unlock()
	notify(fns)
}

// Reset replaces the stored value with the default configuration, with
// both model lists populated from the full built-in catalogs and every
// entry enabled, then notifies.
func (s *Store) Reset() {
	s.mu.Lock()
	v := s.defaults.Clone()
	v.ActiveModels = enabledAll(s.chat)
	v.ActiveEmbeddingModels = enabledAll(s.embedding)
	s.value = s.reconciled(v)
	fns := s.snapshotListeners()
	s.mu.Unlock()
	notify(fns)
}

// Subscribe registers fn to run on every future successful Set, Update
// or Reset. Listeners run synchronously, in registration order, after
// the new value is visible to Get. The returned function removes the
// listener; calling it more than once is a no-op.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount reports the number of registered listeners.
func (s *Store) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// reconciled runs the merger over both model lists. Caller holds no
// particular lock requirement; the catalogs are immutable after New.
func (s *Store) reconciled(v types.Settings) types.Settings {
	v.ActiveModels = Reconcile(v.ActiveModels, s.chat)
	v.ActiveEmbeddingModels = Reconcile(v.ActiveEmbeddingModels, s.embedding)
	return v
}

// snapshotListeners copies the listener functions so notification can
// happen outside the write lock (listeners may call Get).
func (s *Store) snapshotListeners() []func() {
	fns := make([]func(), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	return fns
}

func notify(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

func enabledAll(models []types.ModelEntry) []types.ModelEntry {
	out := types.CloneModels(models)
	for i := range out {
		out[i].Enabled = true
	}
	return out
}
