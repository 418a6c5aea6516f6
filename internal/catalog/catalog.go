// Package catalog holds the read-mostly job catalog and the per-user
// verified-job marks. Both are process-lifetime caches behind interfaces so a
// real persistence backend can be substituted without touching the
// state-machine logic that consumes them.
package catalog

import (
	"fmt"
	"sync"

	"github.com/kaseddie/globalpath-agent/internal/types"
)

// NotFoundError reports a lookup for a job ID the catalog does not contain.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job %q not found in catalog", e.ID)
}

// Store is the catalog collaborator. List order is stable. The only mutations
// are attaching a generated image reference and recording user-level
// verification marks; jobs are never added or deleted after construction.
type Store interface {
	// List returns a snapshot of every job in the catalog.
	List() []types.Job
	// Get returns the job with the given ID.
	Get(id string) (types.Job, error)
	// AttachImage sets the generated image reference on a job.
	AttachImage(id, ref string) error
	// MarkUserVerified records that the current user completed document
	// verification for a job. Distinct from the platform-level IsVerified flag.
	MarkUserVerified(id string) error
	// UserVerified reports whether the current user completed verification
	// for a job.
	UserVerified(id string) bool
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	jobs     []types.Job
	index    map[string]int
	verified map[string]struct{}
}

// NewMemoryStore builds a store over the given jobs. Use Seed() for the
// shipped catalog.
func NewMemoryStore(jobs []types.Job) *MemoryStore {
	index := make(map[string]int, len(jobs))
	copied := make([]types.Job, len(jobs))
	copy(copied, jobs)
	for i, j := range copied {
		index[j.ID] = i
	}
	return &MemoryStore{
		jobs:     copied,
		index:    index,
		verified: make(map[string]struct{}),
	}
}

// List returns a snapshot of every job in the catalog.
func (s *MemoryStore) List() []types.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Get returns the job with the given ID.
func (s *MemoryStore) Get(id string) (types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return types.Job{}, &NotFoundError{ID: id}
	}
	return s.jobs[i], nil
}

// AttachImage sets the generated image reference on a job.
func (s *MemoryStore) AttachImage(id, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	s.jobs[i].ImageRef = ref
	return nil
}

// MarkUserVerified records a user-level verification mark for a job.
func (s *MemoryStore) MarkUserVerified(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return &NotFoundError{ID: id}
	}
	s.verified[id] = struct{}{}
	return nil
}

// UserVerified reports whether a job carries a user-level verification mark.
func (s *MemoryStore) UserVerified(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.verified[id]
	return ok
}
