package visitor

import "sync"

// SyncMap guards a plain map with an RWMutex so concurrent traversals can
// share per type metadata.
type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns the value stored under k, if any.
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// Put stores v under k, replacing any previous value.
func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

// NewSyncMap creates an empty SyncMap.
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
