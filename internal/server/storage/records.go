package storage

import (
	"context"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// RecordStorage defines interface for canonical record persistence.
// The server copy is the source of truth; clients hold replicas of it.
type RecordStorage interface {
	// Get retrieves a single record, including soft-deleted ones.
	// Returns ErrRecordNotFound if the record doesn't exist
	Get(ctx context.Context, ownerID, entityType, id string) (*models.Record, error)

	// ListActive retrieves all non-deleted records of one collection.
	// Returns empty slice if no records found
	ListActive(ctx context.Context, ownerID, entityType string) ([]*models.Record, error)

	// ListSince retrieves all records (including deleted) of one collection
	// touched after the given time. Used for delta synchronization.
	// Returns empty slice if no records found
	ListSince(ctx context.Context, ownerID, entityType string, since time.Time) ([]*models.Record, error)

	// Upsert creates or updates a record
	Upsert(ctx context.Context, record *models.Record) error

	// SoftDelete marks a record as deleted with the given timestamp.
	// Deleting a missing or already deleted record is a no-op
	SoftDelete(ctx context.Context, ownerID, entityType, id string, deletedAt time.Time) error
}
