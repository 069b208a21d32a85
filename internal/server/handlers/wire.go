package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/pkg/api"
)

// writeJSON пишет JSON ответ с указанным статусом
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError пишет стандартный ответ с ошибкой
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: message})
}

// recordToWire конвертирует доменную модель в проводной формат
func recordToWire(r *models.Record) api.Record {
	record := api.Record{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Type:      r.Type,
		Title:     r.Title,
		Body:      r.Body,
		Done:      r.Done,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Deleted() {
		deletedAt := r.DeletedAt
		record.DeletedAt = &deletedAt
	}
	return record
}

// recordsToWire конвертирует срез записей в проводной формат
func recordsToWire(records []*models.Record) []api.Record {
	out := make([]api.Record, 0, len(records))
	for _, r := range records {
		out = append(out, recordToWire(r))
	}
	return out
}

// changeSetToWire конвертирует набор изменений в проводной формат
func changeSetToWire(cs *models.ChangeSet) api.ChangeSet {
	out := api.ChangeSet{
		Created: make([]api.Record, 0, len(cs.Created)),
		Updated: make([]api.Record, 0, len(cs.Updated)),
		Deleted: cs.Deleted,
	}
	if out.Deleted == nil {
		out.Deleted = []string{}
	}
	for _, r := range cs.Created {
		out.Created = append(out.Created, recordToWire(r))
	}
	for _, r := range cs.Updated {
		out.Updated = append(out.Updated, recordToWire(r))
	}
	return out
}
