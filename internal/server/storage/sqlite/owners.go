package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/internal/server/storage"
)

// CreateOwner registers a new account
func (s *Storage) CreateOwner(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (id, name, created_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, owner.ID, owner.Name, owner.CreatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrOwnerExists
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}

	return nil
}

// GetOwner retrieves an account by ID
func (s *Storage) GetOwner(ctx context.Context, id string) (*models.Owner, error) {
	query := `SELECT id, name, created_at FROM owners WHERE id = ?`
	return s.queryOwner(ctx, query, id)
}

// GetOwnerByName retrieves an account by its unique name
func (s *Storage) GetOwnerByName(ctx context.Context, name string) (*models.Owner, error) {
	query := `SELECT id, name, created_at FROM owners WHERE name = ?`
	return s.queryOwner(ctx, query, name)
}

func (s *Storage) queryOwner(ctx context.Context, query string, arg any) (*models.Owner, error) {
	owner := &models.Owner{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, arg).Scan(&owner.ID, &owner.Name, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	owner.CreatedAt = nanosToTime(createdAt)
	return owner, nil
}
