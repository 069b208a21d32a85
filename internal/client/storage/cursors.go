package storage

import (
	"context"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

//go:generate moq -out cursorstore_mock.go . CursorStore

// CursorStore persists the last-confirmed sync timestamp per
// (owner, entity type) pair.
type CursorStore interface {
	// GetCursor retrieves the cursor for the pair.
	// Returns (nil, nil) if no sync has been confirmed yet.
	GetCursor(ctx context.Context, ownerID, entityType string) (*models.Cursor, error)

	// SetCursor overwrites the cursor for the pair. Cursors are always
	// replaced whole, never merged.
	SetCursor(ctx context.Context, ownerID, entityType string, lastSync time.Time) error
}
