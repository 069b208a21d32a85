package models

import (
	"errors"
	"time"
)

// Record представляет одну запись коллекции, принадлежащую пользователю
// (задача, список, заметка). Записи удаляются мягко: DeletedAt проставляется,
// но строка сохраняется, чтобы дельта-синхронизация видела удаления.
type Record struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания записи
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего изменения
	DeletedAt time.Time `json:"deleted_at"` // DeletedAt время удаления; zero value = запись жива
	ID        string    `json:"id"`         // ID уникальный идентификатор записи (UUID)
	OwnerID   string    `json:"owner_id"`   // OwnerID идентификатор владельца
	Type      string    `json:"type"`       // Type тип сущности: "task", "list", "note"
	Title     string    `json:"title"`      // Title заголовок записи
	Body      string    `json:"body"`       // Body произвольное содержимое
	Done      bool      `json:"done"`       // Done флаг завершенности (для задач)
}

// EntityType константы для типов сущностей
const (
	EntityTypeTask = "task"
	EntityTypeList = "list"
	EntityTypeNote = "note"
)

// KnownEntityType reports whether the type is one of the supported
// entity types.
func KnownEntityType(entityType string) bool {
	switch entityType {
	case EntityTypeTask, EntityTypeList, EntityTypeNote:
		return true
	}
	return false
}

// Deleted reports whether the record is soft-deleted.
func (r *Record) Deleted() bool {
	return !r.DeletedAt.IsZero()
}

// Validate checks the record's timestamp invariants:
// UpdatedAt >= CreatedAt, and DeletedAt (when set) >= CreatedAt.
func (r *Record) Validate() error {
	if r.ID == "" {
		return errors.New("record id is empty")
	}
	if r.OwnerID == "" {
		return errors.New("record owner_id is empty")
	}
	if r.Type == "" {
		return errors.New("record type is empty")
	}
	if r.CreatedAt.IsZero() {
		return errors.New("record created_at is zero")
	}
	if r.UpdatedAt.Before(r.CreatedAt) {
		return errors.New("record updated_at is before created_at")
	}
	if r.Deleted() && r.DeletedAt.Before(r.CreatedAt) {
		return errors.New("record deleted_at is before created_at")
	}
	return nil
}

// Clone создает глубокую копию записи
func (r *Record) Clone() *Record {
	clone := *r
	return &clone
}
