package storage

import (
	"context"

	"github.com/iudanet/listkeeper/internal/models"
)

// OwnerStorage defines interface for account persistence
type OwnerStorage interface {
	// CreateOwner registers a new account
	// Returns ErrOwnerExists if the name is already taken
	CreateOwner(ctx context.Context, owner *models.Owner) error

	// GetOwner retrieves an account by ID
	// Returns ErrOwnerNotFound if the account doesn't exist
	GetOwner(ctx context.Context, id string) (*models.Owner, error)

	// GetOwnerByName retrieves an account by its unique name
	// Returns ErrOwnerNotFound if the account doesn't exist
	GetOwnerByName(ctx context.Context, name string) (*models.Owner, error)
}
