package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/internal/server/middleware"
	"github.com/iudanet/listkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/listkeeper/pkg/api"
)

// fixedClock отдает фиксированное время для детерминированных тестов
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var serverNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupHandler(t *testing.T) (*SyncHandler, *sqlite.Storage) {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.DiscardHandler)
	return NewSyncHandler(logger, store, store, fixedClock{t: serverNow}), store
}

// authedRequest создает запрос с владельцем в контексте и типом в пути
func authedRequest(method, target, ownerID, entityType string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.SetPathValue("type", entityType)
	return req.WithContext(middleware.WithOwnerID(req.Context(), ownerID))
}

func seedRecord(t *testing.T, store *sqlite.Storage, owner, entityType, id string, at time.Time) {
	t.Helper()
	require.NoError(t, store.Upsert(context.Background(), &models.Record{
		ID:        id,
		OwnerID:   owner,
		Type:      entityType,
		Title:     "record " + id,
		CreatedAt: at,
		UpdatedAt: at,
	}))
}

func TestHandleFull(t *testing.T) {
	h, store := setupHandler(t)

	seedRecord(t, store, "user-1", models.EntityTypeTask, "a", serverNow.Add(-time.Hour))
	seedRecord(t, store, "user-1", models.EntityTypeTask, "b", serverNow.Add(-time.Hour))
	require.NoError(t, store.SoftDelete(context.Background(), "user-1", models.EntityTypeTask, "b", serverNow.Add(-time.Minute)))
	// Чужие записи не видны
	seedRecord(t, store, "user-2", models.EntityTypeTask, "x", serverNow.Add(-time.Hour))

	rec := httptest.NewRecorder()
	h.HandleFull(rec, authedRequest(http.MethodGet, "/api/v1/sync/task/full", "user-1", models.EntityTypeTask, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.FullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ServerTime.Equal(serverNow))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "a", resp.Records[0].ID)
}

func TestHandleFull_Unauthorized(t *testing.T) {
	h, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sync/task/full", nil)
	req.SetPathValue("type", models.EntityTypeTask)

	rec := httptest.NewRecorder()
	h.HandleFull(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleFull_UnknownType(t *testing.T) {
	h, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	h.HandleFull(rec, authedRequest(http.MethodGet, "/api/v1/sync/widget/full", "user-1", "widget", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChanges(t *testing.T) {
	h, store := setupHandler(t)
	since := serverNow.Add(-10 * time.Minute)

	// Не попадает в дельту
	seedRecord(t, store, "user-1", models.EntityTypeTask, "old", since.Add(-time.Hour))
	// Создана после since
	seedRecord(t, store, "user-1", models.EntityTypeTask, "created", since.Add(time.Minute))
	// Обновлена после since
	updated := &models.Record{
		ID:        "updated",
		OwnerID:   "user-1",
		Type:      models.EntityTypeTask,
		Title:     "edited",
		CreatedAt: since.Add(-time.Hour),
		UpdatedAt: since.Add(2 * time.Minute),
	}
	require.NoError(t, store.Upsert(context.Background(), updated))
	// Удалена после since
	seedRecord(t, store, "user-1", models.EntityTypeTask, "deleted", since.Add(-time.Hour))
	require.NoError(t, store.SoftDelete(context.Background(), "user-1", models.EntityTypeTask, "deleted", since.Add(3*time.Minute)))

	target := "/api/v1/sync/task/changes?since=" + since.Format(time.RFC3339Nano)
	rec := httptest.NewRecorder()
	h.HandleChanges(rec, authedRequest(http.MethodGet, target, "user-1", models.EntityTypeTask, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ChangesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ServerTime.Equal(serverNow))
	require.Len(t, resp.Changes.Created, 1)
	assert.Equal(t, "created", resp.Changes.Created[0].ID)
	require.Len(t, resp.Changes.Updated, 1)
	assert.Equal(t, "updated", resp.Changes.Updated[0].ID)
	assert.Equal(t, []string{"deleted"}, resp.Changes.Deleted)
}

func TestHandleChanges_BadSince(t *testing.T) {
	h, _ := setupHandler(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing", target: "/api/v1/sync/task/changes"},
		{name: "malformed", target: "/api/v1/sync/task/changes?since=yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleChanges(rec, authedRequest(http.MethodGet, tt.target, "user-1", models.EntityTypeTask, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleUpload(t *testing.T) {
	h, store := setupHandler(t)
	ctx := context.Background()

	seedRecord(t, store, "user-1", models.EntityTypeTask, "existing", serverNow.Add(-time.Hour))
	seedRecord(t, store, "user-1", models.EntityTypeTask, "doomed", serverNow.Add(-time.Hour))

	body, err := json.Marshal(api.UploadRequest{
		Since: serverNow.Add(-time.Minute),
		Changes: api.ChangeSet{
			Created: []api.Record{{ID: "fresh", Title: "new task"}},
			Updated: []api.Record{{ID: "existing", Title: "edited", Done: true}},
			Deleted: []string{"doomed"},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HandleUpload(rec, authedRequest(http.MethodPost, "/api/v1/sync/task/upload", "user-1", models.EntityTypeTask, body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ServerTime.Equal(serverNow))
	assert.Equal(t, 3, resp.Applied)

	// Созданная запись штампуется серверным временем
	fresh, err := store.Get(ctx, "user-1", models.EntityTypeTask, "fresh")
	require.NoError(t, err)
	assert.True(t, fresh.CreatedAt.Equal(serverNow))
	assert.True(t, fresh.UpdatedAt.Equal(serverNow))

	// Обновленная запись сохраняет исходное время создания
	existing, err := store.Get(ctx, "user-1", models.EntityTypeTask, "existing")
	require.NoError(t, err)
	assert.Equal(t, "edited", existing.Title)
	assert.True(t, existing.Done)
	assert.True(t, existing.CreatedAt.Equal(serverNow.Add(-time.Hour)))
	assert.True(t, existing.UpdatedAt.Equal(serverNow))

	// Удаление мягкое
	doomed, err := store.Get(ctx, "user-1", models.EntityTypeTask, "doomed")
	require.NoError(t, err)
	assert.True(t, doomed.Deleted())

	// Курсор записан серверным временем
	cursor, err := store.GetCursor(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.True(t, cursor.LastSync.Equal(serverNow))
}

func TestHandleUpload_Conflict(t *testing.T) {
	h, store := setupHandler(t)
	ctx := context.Background()

	serverCursor := serverNow.Add(-100 * time.Millisecond)
	clientCursor := serverNow.Add(-150 * time.Millisecond)
	require.NoError(t, store.SetCursor(ctx, "user-1", models.EntityTypeTask, serverCursor))

	body, err := json.Marshal(api.UploadRequest{
		Since: clientCursor,
		Changes: api.ChangeSet{
			Deleted: []string{"whatever"},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HandleUpload(rec, authedRequest(http.MethodPost, "/api/v1/sync/task/upload", "user-1", models.EntityTypeTask, body))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp api.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ServerCursor.Equal(serverCursor))
	assert.True(t, resp.ClientCursor.Equal(clientCursor))

	// Изменения отвергнуты целиком: курсор не сдвинулся
	cursor, err := store.GetCursor(ctx, "user-1", models.EntityTypeTask)
	require.NoError(t, err)
	assert.True(t, cursor.LastSync.Equal(serverCursor))
}

func TestHandleUpload_EqualCursorPasses(t *testing.T) {
	h, store := setupHandler(t)
	ctx := context.Background()

	cursorAt := serverNow.Add(-time.Minute)
	require.NoError(t, store.SetCursor(ctx, "user-1", models.EntityTypeTask, cursorAt))

	body, err := json.Marshal(api.UploadRequest{
		Since: cursorAt,
		Changes: api.ChangeSet{
			Created: []api.Record{{ID: "a", Title: "task"}},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HandleUpload(rec, authedRequest(http.MethodPost, "/api/v1/sync/task/upload", "user-1", models.EntityTypeTask, body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUpload_BadBody(t *testing.T) {
	h, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	h.HandleUpload(rec, authedRequest(http.MethodPost, "/api/v1/sync/task/upload", "user-1", models.EntityTypeTask, []byte("not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpload_RecordWithoutID(t *testing.T) {
	h, _ := setupHandler(t)

	body, err := json.Marshal(api.UploadRequest{
		Since: serverNow.Add(-time.Minute),
		Changes: api.ChangeSet{
			Created: []api.Record{{Title: "no id"}},
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HandleUpload(rec, authedRequest(http.MethodPost, "/api/v1/sync/task/upload", "user-1", models.EntityTypeTask, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
