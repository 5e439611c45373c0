package leave

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore holds leave requests for MemoryRepository. Create one per process or per test.
type MemoryStore struct {
	mu     sync.RWMutex
	leaves map[uuid.UUID]LeaveRequest
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{leaves: make(map[uuid.UUID]LeaveRequest)}
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leaves)
}

// List returns every stored request ordered by CreatedAt, then ID.
func (s *MemoryStore) List() []LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeaveRequest, 0, len(s.leaves))
	for _, l := range s.leaves {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

type MemoryRepository struct {
	store *MemoryStore
}

func NewMemoryRepository(store *MemoryStore) *MemoryRepository {
	return &MemoryRepository{store: store}
}

func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (LeaveRequest, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.leaves[id]
	return l, ok, nil
}

func (r *MemoryRepository) Save(_ context.Context, l LeaveRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.leaves[l.ID] = l
	return nil
}
