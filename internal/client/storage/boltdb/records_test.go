package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/listkeeper/internal/client/storage"
	"github.com/iudanet/listkeeper/internal/models"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "records_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecord(owner, entityType, id string, at time.Time) *models.Record {
	return &models.Record{
		ID:        id,
		OwnerID:   owner,
		Type:      entityType,
		Title:     "record " + id,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	record := newRecord("user-1", models.EntityTypeTask, "a", baseTime)
	require.NoError(t, store.Upsert(ctx, record))

	got, err := store.Get(ctx, "user-1", models.EntityTypeTask, "a")
	require.NoError(t, err)
	assert.Equal(t, record.Title, got.Title)
	assert.True(t, got.CreatedAt.Equal(baseTime))

	// Повторный Upsert перезаписывает запись
	record.Title = "renamed"
	record.UpdatedAt = baseTime.Add(time.Minute)
	require.NoError(t, store.Upsert(ctx, record))

	got, err = store.Get(ctx, "user-1", models.EntityTypeTask, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.Get(ctx, "user-1", models.EntityTypeTask, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestListActiveFiltersCollectionsAndDeleted(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "a", baseTime)))
	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "b", baseTime)))
	// Другая коллекция того же владельца
	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeNote, "n", baseTime)))
	// Чужая коллекция того же типа
	require.NoError(t, store.Upsert(ctx, newRecord("user-2", models.EntityTypeTask, "x", baseTime)))

	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "b", baseTime.Add(time.Minute)))

	records, err := store.ListActive(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}

func TestListSince(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	old := newRecord("user-1", models.EntityTypeTask, "old", baseTime.Add(-time.Hour))
	require.NoError(t, store.Upsert(ctx, old))

	created := newRecord("user-1", models.EntityTypeTask, "created", baseTime.Add(time.Minute))
	require.NoError(t, store.Upsert(ctx, created))

	updated := newRecord("user-1", models.EntityTypeTask, "updated", baseTime.Add(-time.Hour))
	updated.UpdatedAt = baseTime.Add(2 * time.Minute)
	require.NoError(t, store.Upsert(ctx, updated))

	deleted := newRecord("user-1", models.EntityTypeTask, "deleted", baseTime.Add(-time.Hour))
	require.NoError(t, store.Upsert(ctx, deleted))
	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "deleted", baseTime.Add(3*time.Minute)))

	records, err := store.ListSince(ctx, "user-1", models.EntityTypeTask, baseTime)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, r := range records {
		ids[r.ID] = true
	}
	assert.Equal(t, map[string]bool{"created": true, "updated": true, "deleted": true}, ids)
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "a", baseTime)))

	deletedAt := baseTime.Add(time.Minute)
	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "a", deletedAt))

	got, err := store.Get(ctx, "user-1", models.EntityTypeTask, "a")
	require.NoError(t, err)
	assert.True(t, got.Deleted())
	assert.True(t, got.DeletedAt.Equal(deletedAt))
}

func TestSoftDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "a", baseTime)))

	firstAt := baseTime.Add(time.Minute)
	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "a", firstAt))

	// Повторное удаление не двигает метку времени
	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "a", baseTime.Add(time.Hour)))

	got, err := store.Get(ctx, "user-1", models.EntityTypeTask, "a")
	require.NoError(t, err)
	assert.True(t, got.DeletedAt.Equal(firstAt))

	// Удаление несуществующей записи тоже no-op
	require.NoError(t, store.SoftDelete(ctx, "user-1", models.EntityTypeTask, "missing", firstAt))
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "stale-1", baseTime)))
	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "stale-2", baseTime)))
	// Соседняя коллекция не должна пострадать
	other := newRecord("user-1", models.EntityTypeNote, "n", baseTime)
	require.NoError(t, store.Upsert(ctx, other))

	snapshot := []*models.Record{
		newRecord("user-1", models.EntityTypeTask, "fresh-1", baseTime.Add(time.Minute)),
		newRecord("user-1", models.EntityTypeTask, "fresh-2", baseTime.Add(time.Minute)),
	}
	require.NoError(t, store.ReplaceAll(ctx, "user-1", models.EntityTypeTask, snapshot))

	records, err := store.ListActive(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, r := range records {
		ids[r.ID] = true
	}
	assert.Equal(t, map[string]bool{"fresh-1": true, "fresh-2": true}, ids)

	_, err = store.Get(ctx, "user-1", models.EntityTypeTask, "stale-1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	// Соседняя коллекция на месте
	got, err := store.Get(ctx, "user-1", models.EntityTypeNote, "n")
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)
}

func TestReplaceAll_EmptySnapshot(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.Upsert(ctx, newRecord("user-1", models.EntityTypeTask, "a", baseTime)))
	require.NoError(t, store.ReplaceAll(ctx, "user-1", models.EntityTypeTask, nil))

	records, err := store.ListActive(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListActive_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket records напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketRecords)
	})
	require.NoError(t, err)

	_, err = store.ListActive(ctx, "user-1", models.EntityTypeTask)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "records bucket not found")
}
