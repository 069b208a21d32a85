package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/listkeeper/internal/models"
)

// pendingKey строит ключ журнала вида owner/type/seq. Порядковый номер
// в BigEndian сохраняет порядок добавления при обходе префикса.
func pendingKey(ownerID, entityType string, seq uint64) []byte {
	key := make([]byte, 0, len(ownerID)+len(entityType)+10)
	key = append(key, ownerID...)
	key = append(key, '/')
	key = append(key, entityType...)
	key = append(key, '/')
	key = binary.BigEndian.AppendUint64(key, seq)
	return key
}

// AppendPending добавляет изменение в конец журнала. Журнал переживает
// процесс: изменение, записанное одной командой, отправит следующая
func (s *Storage) AppendPending(ctx context.Context, change models.PendingChange) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		data, err := json.Marshal(&change)
		if err != nil {
			return fmt.Errorf("failed to marshal pending change: %w", err)
		}

		key := pendingKey(change.OwnerID, change.EntityType, seq)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to store pending change: %w", err)
		}

		return nil
	})
}

// ListPending возвращает изменения владельца одной коллекции в порядке
// добавления
func (s *Storage) ListPending(ctx context.Context, ownerID, entityType string) ([]models.PendingChange, error) {
	var changes []models.PendingChange

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		prefix := collectionPrefix(ownerID, entityType)
		c := bucket.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var change models.PendingChange
			if err := json.Unmarshal(v, &change); err != nil {
				return fmt.Errorf("failed to unmarshal pending change: %w", err)
			}
			changes = append(changes, change)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return changes, nil
}

// ClearPending удаляет изменения владельца одной коллекции, не трогая
// остальной журнал
func (s *Storage) ClearPending(ctx context.Context, ownerID, entityType string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		prefix := collectionPrefix(ownerID, entityType)
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return fmt.Errorf("failed to delete pending change: %w", err)
			}
		}

		return nil
	})
}

// CountPending возвращает число изменений владельца по всем коллекциям
func (s *Storage) CountPending(ctx context.Context, ownerID string) (int, error) {
	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		prefix := append([]byte(ownerID), '/')
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			count++
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}
