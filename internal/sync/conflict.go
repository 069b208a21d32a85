package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// CursorSource is the read side of a cursor store. GetCursor returns
// (nil, nil) when no cursor has been recorded for the pair yet.
type CursorSource interface {
	GetCursor(ctx context.Context, ownerID, entityType string) (*models.Cursor, error)
}

// Arbiter performs the optimistic-concurrency check before a write is
// accepted: a caller whose claimed cursor is behind the recorded one has
// stale knowledge and must not silently clobber newer state. This is
// detection only, not a lock; a detected conflict always resolves by
// discarding the losing write and forcing a refresh.
type Arbiter struct {
	cursors CursorSource
}

// NewArbiter creates an Arbiter over the given cursor store.
func NewArbiter(cursors CursorSource) *Arbiter {
	return &Arbiter{cursors: cursors}
}

// Check compares callerSince against the recorded cursor for the pair.
// It returns nil when no cursor exists or callerSince is not behind it,
// and a *ConflictError carrying both timestamps otherwise. The recorded
// cursor is the sole trust anchor: callerSince is an advisory marker,
// never proof of freshness.
func (a *Arbiter) Check(ctx context.Context, ownerID, entityType string, callerSince time.Time) error {
	cursor, err := a.cursors.GetCursor(ctx, ownerID, entityType)
	if err != nil {
		return fmt.Errorf("failed to load cursor: %w", err)
	}
	if cursor == nil {
		return nil
	}
	if callerSince.Before(cursor.LastSync) {
		return &ConflictError{
			ServerCursor: cursor.LastSync,
			ClientCursor: callerSince,
		}
	}
	return nil
}
