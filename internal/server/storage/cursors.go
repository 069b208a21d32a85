package storage

import (
	"context"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// CursorStorage defines interface for the server-recorded sync cursors.
// The cursor of a pair (owner, entity type) is the server time of the last
// accepted upload; it is the only trust anchor for conflict detection.
type CursorStorage interface {
	// GetCursor retrieves the recorded cursor for the collection.
	// Returns (nil, nil) if no upload has been accepted yet
	GetCursor(ctx context.Context, ownerID, entityType string) (*models.Cursor, error)

	// SetCursor records the server time of an accepted upload
	SetCursor(ctx context.Context, ownerID, entityType string, lastSync time.Time) error
}
