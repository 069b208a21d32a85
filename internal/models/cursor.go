package models

import "time"

// Cursor marks the point up to which the local replica of one
// (owner, entity type) collection is known consistent with the server.
// There is exactly one cursor per pair; it is created on the first
// successful sync and overwritten whole on every successful sync since.
type Cursor struct {
	LastSync time.Time `json:"last_sync"` // LastSync серверное время последней успешной синхронизации
	OwnerID  string    `json:"owner_id"`
	Type     string    `json:"type"`
}
