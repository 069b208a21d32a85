package storage

import (
	"context"

	"github.com/iudanet/listkeeper/internal/models"
)

//go:generate moq -out pendingstore_mock.go . PendingStore

// PendingStore persists the append-only log of local edits awaiting
// upload. The log outlives the process: a change recorded by one command
// invocation must still be there when the next invocation uploads.
type PendingStore interface {
	// AppendPending adds one change to the end of the log.
	AppendPending(ctx context.Context, change models.PendingChange) error

	// ListPending returns the owner's changes of one entity type in
	// append order.
	ListPending(ctx context.Context, ownerID, entityType string) ([]models.PendingChange, error)

	// ClearPending drops the owner's changes of one entity type,
	// keeping the rest of the log.
	ClearPending(ctx context.Context, ownerID, entityType string) error

	// CountPending returns the number of the owner's changes across all
	// entity types.
	CountPending(ctx context.Context, ownerID string) (int, error)
}
