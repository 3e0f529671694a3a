package store

import (
	"sync"

	"github.com/bankofai/agent-wallet/internal/domain"
)

// MemoryPath is what Memory.Path reports.
const MemoryPath = ":memory:"

// Memory is a Keystore with no backing file, for tests and for callers that
// inject credentials directly.
type Memory struct {
	mu   sync.Mutex
	data domain.KeystoreData
}

// NewMemory returns a Memory holding a copy of data.
func NewMemory(data domain.KeystoreData) *Memory {
	return &Memory{data: data.Clone()}
}

func (m *Memory) Path() string { return MemoryPath }

func (m *Memory) Read() (domain.KeystoreData, error) { return m.GetAll() }

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	delete(m.data, key)
	return ok, nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.SortedKeys(), nil
}

func (m *Memory) GetAll() (domain.KeystoreData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone(), nil
}

// Write is a no-op.
func (m *Memory) Write() error { return nil }

var _ domain.Keystore = (*Memory)(nil)
