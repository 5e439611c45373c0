package employee

import (
	"context"
	"sync"
)

// MemoryStore holds employees for MemoryRepository. Create one per process or per test.
type MemoryStore struct {
	mu        sync.RWMutex
	employees map[int64]Employee
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{employees: make(map[int64]Employee)}
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

type MemoryRepository struct {
	store *MemoryStore
}

func NewMemoryRepository(store *MemoryStore) *MemoryRepository {
	return &MemoryRepository{store: store}
}

func (r *MemoryRepository) FindByID(_ context.Context, id int64) (Employee, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees[id]
	return e, ok, nil
}

func (r *MemoryRepository) Save(_ context.Context, e Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.employees[e.ID] = e
	return nil
}
