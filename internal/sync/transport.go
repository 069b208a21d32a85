package sync

import (
	"context"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

//go:generate moq -out transport_mock.go . Transport

// Snapshot is the server's full copy of one collection, together with the
// server time the client sets its cursor to after applying it.
type Snapshot struct {
	ServerTime time.Time
	Records    []*models.Record
}

// Delta is the server's classified change set since a cursor.
type Delta struct {
	ServerTime time.Time
	Changes    *models.ChangeSet
}

// UploadResult reports a successfully applied upload.
type UploadResult struct {
	ServerTime time.Time
	Applied    int
}

// Transport is the request/response exchange with the server copy,
// abstracted from any particular wire protocol. Implementations translate
// structured conflict responses into *ConflictError, credential rejections
// into ErrAuth, malformed payloads into ErrValidation, and network or
// server failures into *TransportError.
type Transport interface {
	// DownloadFull fetches the complete current snapshot of the collection.
	DownloadFull(ctx context.Context, ownerID, entityType string) (*Snapshot, error)

	// DownloadChanges fetches changes since the given cursor value.
	DownloadChanges(ctx context.Context, ownerID, entityType string, since time.Time) (*Delta, error)

	// UploadChanges pushes local changes. since is the client's cursor at
	// the time the changes were collected; the server re-validates it
	// against its own recorded cursor.
	UploadChanges(ctx context.Context, ownerID, entityType string, changes *models.ChangeSet, since time.Time) (*UploadResult, error)
}
