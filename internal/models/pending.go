package models

import "time"

// Op enumerates local operations awaiting upload.
type Op string

// Pending operation kinds
const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// PendingChange records one local edit accumulated between successful
// uploads. The log is append-only; the uploaded type's entries are
// cleared after the server accepts them and retained for replay when an
// upload fails.
type PendingChange struct {
	At         time.Time `json:"at"`
	OwnerID    string    `json:"owner_id"`
	EntityType string    `json:"entity_type"`
	RecordID   string    `json:"record_id"`
	Op         Op        `json:"op"`
}
