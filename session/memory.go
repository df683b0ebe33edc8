package session

import "sync"

type memoryStore struct {
	mu    sync.RWMutex
	state snapshot
}

// NewMemoryStore returns a Store scoped to the current process.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

func (m *memoryStore) Role() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Role
}

func (m *memoryStore) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Username
}

func (m *memoryStore) FullName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.FullName != "" {
		return m.state.FullName
	}
	return m.state.Username
}

func (m *memoryStore) InstructorID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.InstructorID
}

func (m *memoryStore) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.UserID
}

func (m *memoryStore) Authenticated() bool {
	return m.Token() != ""
}

func (m *memoryStore) SetAuth(auth Auth) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.merge(auth)
	return nil
}

func (m *memoryStore) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = snapshot{}
	return nil
}
