package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// GetCursor retrieves the server-recorded cursor for the collection
// Returns (nil, nil) if no upload has been accepted yet
func (s *Storage) GetCursor(ctx context.Context, ownerID, entityType string) (*models.Cursor, error) {
	query := `
		SELECT last_sync
		FROM cursors
		WHERE owner_id = ? AND type = ?
	`

	var nanos int64
	err := s.db.QueryRowContext(ctx, query, ownerID, entityType).Scan(&nanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cursor: %w", err)
	}

	return &models.Cursor{
		OwnerID:  ownerID,
		Type:     entityType,
		LastSync: nanosToTime(nanos),
	}, nil
}

// SetCursor records the server time of an accepted upload
func (s *Storage) SetCursor(ctx context.Context, ownerID, entityType string, lastSync time.Time) error {
	query := `
		INSERT INTO cursors (owner_id, type, last_sync)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_id, type) DO UPDATE SET
			last_sync = excluded.last_sync
	`

	if _, err := s.db.ExecContext(ctx, query, ownerID, entityType, lastSync.UnixNano()); err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}

	return nil
}
