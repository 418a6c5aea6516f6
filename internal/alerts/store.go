// Package alerts implements job-alert capture: an append-only,
// process-lifetime list of saved filter-criteria snapshots. The store sits
// behind an interface so a real notification backend can replace it without
// touching the capture logic.
package alerts

import (
	"sync"

	"github.com/google/uuid"
	"github.com/kaseddie/globalpath-agent/internal/types"
)

// Store records job alerts. Append-only; nothing in the agent deletes or
// updates an alert.
type Store interface {
	// Append adds an alert and returns it with a freshly generated ID.
	Append(alert types.JobAlert) types.JobAlert
	// List returns a snapshot of all alerts in creation order.
	List() []types.JobAlert
}

// MemoryStore is the in-process Store implementation. Contents are lost on
// process exit.
type MemoryStore struct {
	mu     sync.Mutex
	alerts []types.JobAlert
}

// NewMemoryStore returns an empty in-memory alert store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds an alert and returns it with a freshly generated ID.
func (s *MemoryStore) Append(alert types.JobAlert) types.JobAlert {
	alert.ID = uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, alert)
	return alert
}

// List returns a snapshot of all alerts in creation order.
func (s *MemoryStore) List() []types.JobAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.JobAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}
