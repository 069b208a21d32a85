package sync

import "sync"

// lockKey identifies one (owner, entity type) pair.
type lockKey struct {
	ownerID    string
	entityType string
}

// lockTable hands out exclusive non-blocking locks per (owner, entity type).
// A caller that fails TryAcquire must not wait: concurrent triggers for the
// same pair are coalesced, never queued, so at most one sync per pair is in
// flight and there is no backlog to drain.
type lockTable struct {
	mu   sync.Mutex
	held map[lockKey]struct{}
}

func newLockTable() *lockTable {
	return &lockTable{held: make(map[lockKey]struct{})}
}

// TryAcquire takes the lock for the pair if it is free. It never blocks.
func (t *lockTable) TryAcquire(ownerID, entityType string) bool {
	key := lockKey{ownerID: ownerID, entityType: entityType}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.held[key]; ok {
		return false
	}
	t.held[key] = struct{}{}
	return true
}

// Release frees the lock for the pair.
func (t *lockTable) Release(ownerID, entityType string) {
	key := lockKey{ownerID: ownerID, entityType: entityType}

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.held, key)
}
