package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketRecords = []byte("records")
	bucketCursors = []byte("cursors")
	bucketPending = []byte("pending")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Создаем bucket для записей
		if _, err := tx.CreateBucketIfNotExists(bucketRecords); err != nil {
			return fmt.Errorf("failed to create records bucket: %w", err)
		}

		// Создаем bucket для курсоров синхронизации
		if _, err := tx.CreateBucketIfNotExists(bucketCursors); err != nil {
			return fmt.Errorf("failed to create cursors bucket: %w", err)
		}

		// Создаем bucket для журнала неотправленных изменений
		if _, err := tx.CreateBucketIfNotExists(bucketPending); err != nil {
			return fmt.Errorf("failed to create pending bucket: %w", err)
		}

		return nil
	})
}

// collectionKey строит ключ записи вида owner/type/id. Записи одной
// коллекции лежат подряд, что позволяет сканировать их через Seek по
// префиксу.
func collectionKey(ownerID, entityType, id string) []byte {
	return []byte(ownerID + "/" + entityType + "/" + id)
}

// collectionPrefix строит префикс ключей одной коллекции owner/type/.
func collectionPrefix(ownerID, entityType string) []byte {
	return []byte(ownerID + "/" + entityType + "/")
}
