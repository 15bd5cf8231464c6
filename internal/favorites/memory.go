package favorites

import (
	"context"
	"sync"
)

// MemoryStorage is an in-process Storage, used by tests and by hosts that
// embed the dashboard without a database file.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryStorage) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
