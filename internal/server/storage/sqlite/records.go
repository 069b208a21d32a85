package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/internal/server/storage"
)

// Временные метки хранятся как UnixNano: сравнение курсоров требует
// наносекундной точности.
const recordColumns = `id, owner_id, type, title, body, done, created_at, updated_at, deleted_at`

// Get retrieves a single record, including soft-deleted ones
func (s *Storage) Get(ctx context.Context, ownerID, entityType, id string) (*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE owner_id = ? AND type = ? AND id = ?
	`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, ownerID, entityType, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

// ListActive retrieves all non-deleted records of one collection
func (s *Storage) ListActive(ctx context.Context, ownerID, entityType string) ([]*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE owner_id = ? AND type = ? AND deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRecords(rows)
}

// ListSince retrieves all records (including deleted) of one collection
// touched after the given time. Used for delta synchronization.
func (s *Storage) ListSince(ctx context.Context, ownerID, entityType string, since time.Time) ([]*models.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE owner_id = ? AND type = ?
		  AND (created_at > ? OR updated_at > ? OR deleted_at > ?)
		ORDER BY updated_at ASC, id ASC
	`

	nanos := since.UnixNano()
	rows, err := s.db.QueryContext(ctx, query, ownerID, entityType, nanos, nanos, nanos)
	if err != nil {
		return nil, fmt.Errorf("failed to query records since: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRecords(rows)
}

// Upsert creates or updates a record
func (s *Storage) Upsert(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, type, id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			done = excluded.done,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at
	`

	var deletedAt sql.NullInt64
	if record.Deleted() {
		deletedAt = sql.NullInt64{Int64: record.DeletedAt.UnixNano(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.OwnerID,
		record.Type,
		record.Title,
		record.Body,
		boolToInt(record.Done),
		record.CreatedAt.UnixNano(),
		record.UpdatedAt.UnixNano(),
		deletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}

	return nil
}

// SoftDelete marks a record as deleted. A missing or already deleted
// record is a no-op, keeping deletions idempotent.
func (s *Storage) SoftDelete(ctx context.Context, ownerID, entityType, id string, deletedAt time.Time) error {
	query := `
		UPDATE records
		SET deleted_at = ?, updated_at = ?
		WHERE owner_id = ? AND type = ? AND id = ? AND deleted_at IS NULL
	`

	nanos := deletedAt.UnixNano()
	if _, err := s.db.ExecContext(ctx, query, nanos, nanos, ownerID, entityType, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord читает одну запись из строки результата
func scanRecord(row scanner) (*models.Record, error) {
	record := &models.Record{}
	var done int
	var createdAt, updatedAt int64
	var deletedAt sql.NullInt64

	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&record.Type,
		&record.Title,
		&record.Body,
		&done,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Done = done != 0
	record.CreatedAt = nanosToTime(createdAt)
	record.UpdatedAt = nanosToTime(updatedAt)
	if deletedAt.Valid {
		record.DeletedAt = nanosToTime(deletedAt.Int64)
	}

	return record, nil
}

// scanRecords is a helper function to scan multiple records from rows
func scanRecords(rows *sql.Rows) ([]*models.Record, error) {
	var records []*models.Record

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Helper functions for bool/int and time conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nanosToTime(nanos int64) time.Time {
	return time.Unix(0, nanos).UTC()
}
