package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listkeeper/internal/client/api"
	"github.com/iudanet/listkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/listkeeper/internal/models"
	wire "github.com/iudanet/listkeeper/pkg/api"
)

const testOwner = "user-1"

// newTestDeps собирает зависимости команд поверх временного bbolt и
// тестового HTTP сервера, принимающего любые загрузки
func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost:
			var req wire.UploadRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			applied := len(req.Changes.Created) + len(req.Changes.Updated) + len(req.Changes.Deleted)
			require.NoError(t, json.NewEncoder(w).Encode(wire.UploadResponse{
				ServerTime: now,
				Applied:    applied,
			}))
		default:
			require.NoError(t, json.NewEncoder(w).Encode(wire.FullResponse{
				ServerTime: now,
				Records:    []wire.Record{},
			}))
		}
	}))
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL)
	client.SetToken("test-token")

	return NewDeps(store, client, slog.New(slog.DiscardHandler), testOwner)
}

// freshCursor помечает реплику коллекции свежей, чтобы команды могли
// отправлять изменения без предварительной синхронизации
func freshCursor(t *testing.T, deps *Deps, entityType string) {
	t.Helper()
	err := deps.Store.SetCursor(context.Background(), testOwner, entityType, deps.Clock.Now())
	require.NoError(t, err)
}

func TestRunAdd(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	freshCursor(t, deps, models.EntityTypeTask)

	err := RunAdd(ctx, deps, models.EntityTypeTask, "buy milk", "2 liters")
	require.NoError(t, err)

	records, err := deps.Store.ListActive(ctx, testOwner, models.EntityTypeTask)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "buy milk", records[0].Title)
	assert.Equal(t, "2 liters", records[0].Body)
	assert.NotEmpty(t, records[0].ID)

	// Изменение ушло на сервер, журнал пуст
	pending, err := deps.Coordinator.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestRunAdd_UnknownType(t *testing.T) {
	deps := newTestDeps(t)

	err := RunAdd(context.Background(), deps, "secret", "x", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestRunAdd_StaleReplicaRefreshesAndUploads(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	// Курсора нет: реплика максимально устаревшая. Отправка сама
	// обновляет реплику, не стирая свежую запись, и затем проходит.

	err := RunAdd(ctx, deps, models.EntityTypeTask, "offline task", "")
	require.NoError(t, err)

	records, err := deps.Store.ListActive(ctx, testOwner, models.EntityTypeTask)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "offline task", records[0].Title)

	pending, err := deps.Coordinator.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)

	cursor, err := deps.Store.GetCursor(ctx, testOwner, models.EntityTypeTask)
	require.NoError(t, err)
	require.NotNil(t, cursor)
}

func TestRunDone(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	freshCursor(t, deps, models.EntityTypeTask)

	now := deps.Clock.Now().UTC()
	require.NoError(t, deps.Store.Upsert(ctx, &models.Record{
		ID:        "task-1",
		OwnerID:   testOwner,
		Type:      models.EntityTypeTask,
		Title:     "walk the dog",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	err := RunDone(ctx, deps, "task-1")
	require.NoError(t, err)

	record, err := deps.Store.Get(ctx, testOwner, models.EntityTypeTask, "task-1")
	require.NoError(t, err)
	assert.True(t, record.Done)
	assert.True(t, record.UpdatedAt.After(record.CreatedAt) || record.UpdatedAt.Equal(record.CreatedAt))
}

func TestRunDone_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	err := RunDone(context.Background(), deps, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunRm(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	freshCursor(t, deps, models.EntityTypeNote)

	now := deps.Clock.Now().UTC()
	require.NoError(t, deps.Store.Upsert(ctx, &models.Record{
		ID:        "note-1",
		OwnerID:   testOwner,
		Type:      models.EntityTypeNote,
		Title:     "scratch",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	err := RunRm(ctx, deps, models.EntityTypeNote, "note-1")
	require.NoError(t, err)

	// Запись помечена удаленной, но строка сохранена для дельты
	record, err := deps.Store.Get(ctx, testOwner, models.EntityTypeNote, "note-1")
	require.NoError(t, err)
	assert.True(t, record.Deleted())

	active, err := deps.Store.ListActive(ctx, testOwner, models.EntityTypeNote)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestRunRm_NotFound(t *testing.T) {
	deps := newTestDeps(t)

	err := RunRm(context.Background(), deps, models.EntityTypeTask, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRunList_UnknownType(t *testing.T) {
	deps := newTestDeps(t)

	err := RunList(context.Background(), deps, "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestRunList(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)

	now := deps.Clock.Now().UTC()
	require.NoError(t, deps.Store.Upsert(ctx, &models.Record{
		ID:        "task-1",
		OwnerID:   testOwner,
		Type:      models.EntityTypeTask,
		Title:     "first",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	require.NoError(t, RunList(ctx, deps, models.EntityTypeTask))
}

func TestRunStatus(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	freshCursor(t, deps, models.EntityTypeTask)

	require.NoError(t, RunStatus(ctx, deps))
}

// TestPendingChangesSurviveRestart моделирует два последовательных
// запуска клиента над одним файлом базы: изменение, не отправленное
// первым процессом, отправляет следующий
func TestPendingChangesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "restart_test.db")
	logger := slog.New(slog.DiscardHandler)

	// Первый запуск: сервер недоступен, отправка откладывается
	deadServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadServer.Close()

	store1, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	client1 := api.NewClient(deadServer.URL)
	client1.SetToken("test-token")
	deps1 := NewDeps(store1, client1, logger, testOwner)

	require.NoError(t, RunAdd(ctx, deps1, models.EntityTypeTask, "offline task", ""))

	pending, err := deps1.Coordinator.PendingCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, pending)
	require.NoError(t, store1.Close())

	// Второй запуск над тем же файлом: журнал на месте
	var uploadsMu sync.Mutex
	var uploads []wire.UploadRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost:
			var req wire.UploadRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			uploadsMu.Lock()
			uploads = append(uploads, req)
			uploadsMu.Unlock()
			applied := len(req.Changes.Created) + len(req.Changes.Updated) + len(req.Changes.Deleted)
			require.NoError(t, json.NewEncoder(w).Encode(wire.UploadResponse{
				ServerTime: now,
				Applied:    applied,
			}))
		default:
			require.NoError(t, json.NewEncoder(w).Encode(wire.FullResponse{
				ServerTime: now,
				Records:    []wire.Record{},
			}))
		}
	}))
	defer server.Close()

	store2, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store2.Close())
	}()
	client2 := api.NewClient(server.URL)
	client2.SetToken("test-token")
	deps2 := NewDeps(store2, client2, logger, testOwner)

	pending, err = deps2.Coordinator.PendingCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, pending)

	// Полная синхронизация не стирает неотправленную запись и
	// отправляет ее на сервер
	require.NoError(t, RunSync(ctx, deps2, true))

	records, err := deps2.Store.ListActive(ctx, testOwner, models.EntityTypeTask)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "offline task", records[0].Title)

	uploadsMu.Lock()
	defer uploadsMu.Unlock()
	require.Len(t, uploads, 1)
	require.Len(t, uploads[0].Changes.Created, 1)
	assert.Equal(t, "offline task", uploads[0].Changes.Created[0].Title)

	pending, err = deps2.Coordinator.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)
}

func TestRunSync_EmptyServer(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)

	// Первая синхронизация без курсора выполняет полное скачивание
	require.NoError(t, RunSync(ctx, deps, false))

	for _, entityType := range entityTypes {
		cursor, err := deps.Store.GetCursor(ctx, testOwner, entityType)
		require.NoError(t, err)
		require.NotNil(t, cursor)
	}
}
