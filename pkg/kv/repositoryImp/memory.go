package repositoryImp

import (
	"context"
	"sync"

	"orchardlog/pkg/kv/repository"
)

// Memory is a map-backed KVRepository. FailPut, when set, is returned by Put
// instead of writing, which lets tests simulate a full disk.
type Memory struct {
	mu      sync.Mutex
	data    map[string][]byte
	FailPut error
}

var _ repository.KVRepository = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{data: map[string][]byte{}} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPut != nil {
		return m.FailPut
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Set seeds a raw value, bypassing FailPut.
func (m *Memory) Set(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(value)
}
