package sync

import (
	"context"
	"sync"

	"github.com/iudanet/listkeeper/internal/models"
)

// memoryPendingLog is the in-process fallback PendingStore used when no
// persistent log is configured. Clients whose edits must survive the
// process supply a store-backed log instead; edits recorded here are
// invisible to the next invocation.
type memoryPendingLog struct {
	mu      sync.Mutex
	changes []models.PendingChange
}

func newMemoryPendingLog() *memoryPendingLog {
	return &memoryPendingLog{}
}

func (l *memoryPendingLog) AppendPending(_ context.Context, change models.PendingChange) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.changes = append(l.changes, change)
	return nil
}

func (l *memoryPendingLog) ListPending(_ context.Context, ownerID, entityType string) ([]models.PendingChange, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.PendingChange
	for _, c := range l.changes {
		if c.OwnerID == ownerID && c.EntityType == entityType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (l *memoryPendingLog) ClearPending(_ context.Context, ownerID, entityType string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.changes[:0]
	for _, c := range l.changes {
		if c.OwnerID != ownerID || c.EntityType != entityType {
			kept = append(kept, c)
		}
	}
	l.changes = kept
	return nil
}

func (l *memoryPendingLog) CountPending(_ context.Context, ownerID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, c := range l.changes {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}
