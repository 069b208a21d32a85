package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/listkeeper/internal/models"
)

// cursorKey строит ключ курсора вида owner/type.
func cursorKey(ownerID, entityType string) []byte {
	return []byte(ownerID + "/" + entityType)
}

// SetCursor saves the server-reported time of the last successful sync
func (s *Storage) SetCursor(ctx context.Context, ownerID, entityType string, lastSync time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)
		if bucket == nil {
			return fmt.Errorf("cursors bucket not found")
		}

		// Конвертируем время в bytes (UnixNano)
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(lastSync.UnixNano()))

		if err := bucket.Put(cursorKey(ownerID, entityType), tsBytes); err != nil {
			return fmt.Errorf("failed to save cursor: %w", err)
		}

		return nil
	})
}

// GetCursor retrieves the sync cursor for the collection
// Returns nil if no sync has been performed yet
func (s *Storage) GetCursor(ctx context.Context, ownerID, entityType string) (*models.Cursor, error) {
	var cursor *models.Cursor

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCursors)
		if bucket == nil {
			return fmt.Errorf("cursors bucket not found")
		}

		tsBytes := bucket.Get(cursorKey(ownerID, entityType))
		if tsBytes == nil {
			// Курсор не найден: первая синхронизация
			return nil
		}

		// Конвертируем bytes в время
		nanos := int64(binary.BigEndian.Uint64(tsBytes))
		cursor = &models.Cursor{
			OwnerID:  ownerID,
			Type:     entityType,
			LastSync: time.Unix(0, nanos).UTC(),
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get cursor: %w", err)
	}

	return cursor, nil
}
