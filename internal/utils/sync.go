package utils

import (
	"sync"
)

// OptionalMutex guards allocator state when the allocator was created internally synchronized.
// When disabled, the caller serializes every call and locking is skipped.
type OptionalMutex struct {
	mutex   sync.Mutex
	enabled bool
}

func NewOptionalMutex(enabled bool) OptionalMutex {
	return OptionalMutex{enabled: enabled}
}

func (m *OptionalMutex) Enabled() bool {
	return m.enabled
}

func (m *OptionalMutex) Lock() {
	if m.enabled {
		m.mutex.Lock()
	}
}

func (m *OptionalMutex) Unlock() {
	if m.enabled {
		m.mutex.Unlock()
	}
}

// Locked runs fn while holding the mutex
func (m *OptionalMutex) Locked(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}

// OptionalRWMutex is the reader/writer form of OptionalMutex. Read-only queries such as response
// counts and statistics take the read side.
type OptionalRWMutex struct {
	mutex   sync.RWMutex
	enabled bool
}

func NewOptionalRWMutex(enabled bool) OptionalRWMutex {
	return OptionalRWMutex{enabled: enabled}
}

func (m *OptionalRWMutex) Lock() {
	if m.enabled {
		m.mutex.Lock()
	}
}

func (m *OptionalRWMutex) Unlock() {
	if m.enabled {
		m.mutex.Unlock()
	}
}

func (m *OptionalRWMutex) RLock() {
	if m.enabled {
		m.mutex.RLock()
	}
}

func (m *OptionalRWMutex) RUnlock() {
	if m.enabled {
		m.mutex.RUnlock()
	}
}

// ReadLocked runs fn while holding the read side of the mutex
func (m *OptionalRWMutex) ReadLocked(fn func()) {
	m.RLock()
	defer m.RUnlock()
	fn()
}
