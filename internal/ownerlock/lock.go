// Package ownerlock serializes heavy scheduling operations per owner. The
// engine itself performs read-then-write sequences without transactional
// isolation, so concurrent autoplan or commit invocations for the same owner
// must be arbitrated outside it.
package ownerlock

import "sync"

// MutexMap hands out one mutex per key, created on first use.
type MutexMap struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

func New() *MutexMap {
	return &MutexMap{mutexes: make(map[string]*sync.Mutex)}
}

func (m *MutexMap) Lock(ownerID string) {
	m.mutexFor(ownerID).Lock()
}

func (m *MutexMap) Unlock(ownerID string) {
	m.mutexFor(ownerID).Unlock()
}

// WithLock runs fn while holding the owner's mutex.
func (m *MutexMap) WithLock(ownerID string, fn func() error) error {
	m.Lock(ownerID)
	defer m.Unlock(ownerID)
	return fn()
}

func (m *MutexMap) mutexFor(ownerID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mu, ok := m.mutexes[ownerID]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	m.mutexes[ownerID] = mu
	return mu
}
