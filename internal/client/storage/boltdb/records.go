package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/listkeeper/internal/client/storage"
	"github.com/iudanet/listkeeper/internal/models"
)

// Get retrieves a record by ID
func (s *Storage) Get(ctx context.Context, ownerID, entityType, id string) (*models.Record, error) {
	var record *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		// Получаем данные по ключу owner/type/id
		data := bucket.Get(collectionKey(ownerID, entityType, id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		// Десериализуем
		record = &models.Record{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListActive returns all non-deleted records of the collection
func (s *Storage) ListActive(ctx context.Context, ownerID, entityType string) ([]*models.Record, error) {
	return s.scan(ownerID, entityType, func(r *models.Record) bool {
		return !r.Deleted()
	})
}

// ListSince returns records created, updated or deleted after the given time
func (s *Storage) ListSince(ctx context.Context, ownerID, entityType string, since time.Time) ([]*models.Record, error) {
	return s.scan(ownerID, entityType, func(r *models.Record) bool {
		return r.CreatedAt.After(since) ||
			r.UpdatedAt.After(since) ||
			(r.Deleted() && r.DeletedAt.After(since))
	})
}

// scan итерируется по записям одной коллекции через Seek по префиксу
// и собирает записи, прошедшие фильтр.
func (s *Storage) scan(ownerID, entityType string, keep func(*models.Record) bool) ([]*models.Record, error) {
	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		prefix := collectionPrefix(ownerID, entityType)
		c := bucket.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			record := &models.Record{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}

			if keep(record) {
				records = append(records, record)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert stores or updates a record
func (s *Storage) Upsert(ctx context.Context, record *models.Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		key := collectionKey(record.OwnerID, record.Type, record.ID)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})
}

// SoftDelete marks a record as deleted. A missing record is a no-op so
// that re-applying the same deletion stays idempotent.
func (s *Storage) SoftDelete(ctx context.Context, ownerID, entityType, id string, deletedAt time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		key := collectionKey(ownerID, entityType, id)
		data := bucket.Get(key)
		if data == nil {
			return nil
		}

		// Десериализуем
		record := &models.Record{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		if record.Deleted() {
			return nil
		}

		// Помечаем как удаленную (soft delete)
		record.DeletedAt = deletedAt
		record.UpdatedAt = deletedAt

		// Сохраняем обратно
		updatedData, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}

		if err := bucket.Put(key, updatedData); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}

		return nil
	})
}

// ReplaceAll atomically replaces the whole collection with the given
// records. Runs in a single write transaction: either every record lands
// or the previous state stays intact.
func (s *Storage) ReplaceAll(ctx context.Context, ownerID, entityType string, records []*models.Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRecords)
		if bucket == nil {
			return fmt.Errorf("records bucket not found")
		}

		// Удаляем старые записи коллекции
		prefix := collectionPrefix(ownerID, entityType)
		c := bucket.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return fmt.Errorf("failed to clear collection: %w", err)
			}
		}

		// Записываем снапшот
		for _, record := range records {
			data, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}

			key := collectionKey(record.OwnerID, record.Type, record.ID)
			if err := bucket.Put(key, data); err != nil {
				return fmt.Errorf("failed to save record: %w", err)
			}
		}

		return nil
	})
}
