package storage

import (
	"context"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

//go:generate moq -out recordstore_mock.go . RecordStore

// RecordStore holds the local replica of entity records for one client.
type RecordStore interface {
	// Get retrieves a record by id.
	// Returns ErrRecordNotFound if the record doesn't exist.
	Get(ctx context.Context, ownerID, entityType, id string) (*models.Record, error)

	// ListActive returns all non-deleted records of the collection.
	ListActive(ctx context.Context, ownerID, entityType string) ([]*models.Record, error)

	// ListSince returns records whose CreatedAt, UpdatedAt or DeletedAt
	// is after since, including soft-deleted ones.
	// Used for delta computation.
	ListSince(ctx context.Context, ownerID, entityType string, since time.Time) ([]*models.Record, error)

	// Upsert stores or replaces a record.
	Upsert(ctx context.Context, record *models.Record) error

	// SoftDelete marks the record deleted at the given time.
	// Deleting a record that doesn't exist is a no-op (idempotent).
	SoftDelete(ctx context.Context, ownerID, entityType, id string, deletedAt time.Time) error

	// ReplaceAll atomically replaces the whole collection with records.
	// Either every record lands or the previous content stays observable;
	// no partial snapshot is ever visible.
	ReplaceAll(ctx context.Context, ownerID, entityType string, records []*models.Record) error
}
