package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/internal/server/middleware"
	"github.com/iudanet/listkeeper/internal/server/storage"
	syncer "github.com/iudanet/listkeeper/internal/sync"
	"github.com/iudanet/listkeeper/pkg/api"
)

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger   *slog.Logger
	records  storage.RecordStorage
	cursors  storage.CursorStorage
	computer *syncer.Computer
	arbiter  *syncer.Arbiter
	clock    syncer.Clock
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, records storage.RecordStorage, cursors storage.CursorStorage, clock syncer.Clock) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		records:  records,
		cursors:  cursors,
		computer: syncer.NewComputer(records),
		arbiter:  syncer.NewArbiter(cursors),
		clock:    clock,
	}
}

// HandleFull обрабатывает GET /api/v1/sync/{type}/full
// Возвращает полный снимок коллекции и авторитетное время сервера
func (h *SyncHandler) HandleFull(w http.ResponseWriter, r *http.Request) {
	ownerID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	serverTime := h.clock.Now().UTC()

	records, err := h.records.ListActive(r.Context(), ownerID, entityType)
	if err != nil {
		h.logger.Error("Failed to list records", "error", err, "owner_id", ownerID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := api.FullResponse{
		ServerTime: serverTime,
		Records:    recordsToWire(records),
	}
	writeJSON(w, http.StatusOK, response)

	h.logger.Info("full snapshot served",
		"owner_id", ownerID,
		"type", entityType,
		"records", len(records))
}

// HandleChanges обрабатывает GET /api/v1/sync/{type}/changes?since=RFC3339Nano
// Возвращает классифицированный набор изменений с момента since
func (h *SyncHandler) HandleChanges(w http.ResponseWriter, r *http.Request) {
	ownerID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	sinceStr := r.URL.Query().Get("since")
	if sinceStr == "" {
		writeError(w, http.StatusBadRequest, "missing since parameter")
		return
	}
	since, err := time.Parse(time.RFC3339Nano, sinceStr)
	if err != nil {
		h.logger.Warn("Invalid since parameter", "since", sinceStr, "error", err)
		writeError(w, http.StatusBadRequest, "invalid since parameter")
		return
	}

	serverTime := h.clock.Now().UTC()

	changes, err := h.computer.ComputeChanges(r.Context(), ownerID, entityType, since)
	if err != nil {
		h.logger.Error("Failed to compute changes", "error", err, "owner_id", ownerID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := api.ChangesResponse{
		ServerTime: serverTime,
		Changes:    changeSetToWire(changes),
	}
	writeJSON(w, http.StatusOK, response)

	h.logger.Info("changes served",
		"owner_id", ownerID,
		"type", entityType,
		"since", since,
		"created", len(changes.Created),
		"updated", len(changes.Updated),
		"deleted", len(changes.Deleted))
}

// HandleUpload обрабатывает POST /api/v1/sync/{type}/upload
// Проверяет курсор клиента против записанного сервером и либо принимает
// изменения, либо возвращает 409 с обоими курсорами
func (h *SyncHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ownerID, entityType, ok := h.requestScope(w, r)
	if !ok {
		return
	}

	var req api.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode upload request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Сервер доверяет только собственному курсору: since клиента
	// сверяется с ним, а не принимается на веру
	if err := h.arbiter.Check(r.Context(), ownerID, entityType, req.Since); err != nil {
		var conflict *syncer.ConflictError
		if errors.As(err, &conflict) {
			h.logger.Warn("upload conflict",
				"owner_id", ownerID,
				"type", entityType,
				"server_cursor", conflict.ServerCursor,
				"client_cursor", conflict.ClientCursor)
			writeJSON(w, http.StatusConflict, api.ConflictResponse{
				ServerCursor: conflict.ServerCursor,
				ClientCursor: conflict.ClientCursor,
				Message:      "client cursor is behind the server",
			})
			return
		}
		h.logger.Error("Failed to check cursor", "error", err, "owner_id", ownerID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Все принятые изменения штампуются серверным временем: оно же
	// становится новым курсором
	serverTime := h.clock.Now().UTC()
	applied := 0

	for _, id := range req.Changes.Deleted {
		if err := h.records.SoftDelete(r.Context(), ownerID, entityType, id, serverTime); err != nil {
			h.logger.Error("Failed to delete record", "error", err, "record_id", id)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		applied++
	}

	for i := range req.Changes.Updated {
		if !h.applyUpsert(w, r, ownerID, entityType, &req.Changes.Updated[i], serverTime, false) {
			return
		}
		applied++
	}

	for i := range req.Changes.Created {
		if !h.applyUpsert(w, r, ownerID, entityType, &req.Changes.Created[i], serverTime, true) {
			return
		}
		applied++
	}

	if err := h.cursors.SetCursor(r.Context(), ownerID, entityType, serverTime); err != nil {
		h.logger.Error("Failed to advance cursor", "error", err, "owner_id", ownerID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, api.UploadResponse{
		ServerTime: serverTime,
		Applied:    applied,
	})

	h.logger.Info("upload accepted",
		"owner_id", ownerID,
		"type", entityType,
		"applied", applied,
		"server_time", serverTime)
}

// applyUpsert сохраняет одну входящую запись, штампуя ее серверным
// временем. Идентичность владельца и тип берутся из запроса, не из тела.
func (h *SyncHandler) applyUpsert(w http.ResponseWriter, r *http.Request, ownerID, entityType string, wire *api.Record, serverTime time.Time, created bool) bool {
	if wire.ID == "" {
		writeError(w, http.StatusBadRequest, "record id is empty")
		return false
	}

	record := &models.Record{
		ID:        wire.ID,
		OwnerID:   ownerID,
		Type:      entityType,
		Title:     wire.Title,
		Body:      wire.Body,
		Done:      wire.Done,
		UpdatedAt: serverTime,
	}

	if created {
		record.CreatedAt = serverTime
	} else {
		// Сохраняем исходное время создания существующей записи
		existing, err := h.records.Get(r.Context(), ownerID, entityType, wire.ID)
		switch {
		case err == nil:
			record.CreatedAt = existing.CreatedAt
		case errors.Is(err, storage.ErrRecordNotFound):
			record.CreatedAt = serverTime
		default:
			h.logger.Error("Failed to load record", "error", err, "record_id", wire.ID)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return false
		}
	}

	if err := h.records.Upsert(r.Context(), record); err != nil {
		h.logger.Error("Failed to save record", "error", err, "record_id", record.ID)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return false
	}

	return true
}

// requestScope извлекает владельца из контекста и тип сущности из пути
func (h *SyncHandler) requestScope(w http.ResponseWriter, r *http.Request) (ownerID, entityType string, ok bool) {
	ownerID = middleware.OwnerID(r.Context())
	if ownerID == "" {
		h.logger.Error("Owner ID not found in context")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return "", "", false
	}

	entityType = r.PathValue("type")
	if !models.KnownEntityType(entityType) {
		writeError(w, http.StatusBadRequest, "unknown entity type")
		return "", "", false
	}

	return ownerID, entityType, true
}
