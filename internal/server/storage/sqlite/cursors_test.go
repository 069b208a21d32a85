package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listkeeper/internal/models"
)

func TestCursorStorage_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Курсора нет, пока не принят ни один upload
	cursor, err := s.GetCursor(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	assert.Nil(t, cursor)

	lastSync := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	require.NoError(t, s.SetCursor(ctx, "user-1", models.EntityTypeTask, lastSync))

	cursor, err = s.GetCursor(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "user-1", cursor.OwnerID)
	assert.Equal(t, models.EntityTypeTask, cursor.Type)
	// Наносекундная точность переживает round-trip
	assert.True(t, cursor.LastSync.Equal(lastSync))
}

func TestCursorStorage_Overwrite(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(5 * time.Minute)

	require.NoError(t, s.SetCursor(ctx, "user-1", models.EntityTypeTask, first))
	require.NoError(t, s.SetCursor(ctx, "user-1", models.EntityTypeTask, second))

	cursor, err := s.GetCursor(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.True(t, cursor.LastSync.Equal(second))
}

func TestCursorStorage_IndependentPerCollection(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.SetCursor(ctx, "user-1", models.EntityTypeTask, time.Now()))

	cursor, err := s.GetCursor(ctx, "user-1", models.EntityTypeNote)
	require.NoError(t, err)
	assert.Nil(t, cursor)

	cursor, err = s.GetCursor(ctx, "user-2", models.EntityTypeTask)
	require.NoError(t, err)
	assert.Nil(t, cursor)
}
