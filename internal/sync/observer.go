package sync

import "time"

// Mode identifies which synchronization strategy an attempt used.
type Mode string

// Sync modes
const (
	ModeDelta  Mode = "delta"  // changes since the stored cursor
	ModeFull   Mode = "full"   // wholesale snapshot replacement
	ModeUpload Mode = "upload" // pending local changes pushed to the server
)

// Observer receives lifecycle notifications from the Coordinator. It exists
// for UI and telemetry collaborators and is never required for correctness;
// implementations must not block.
type Observer interface {
	SyncStarted(entityType string, mode Mode)
	SyncCompleted(entityType string, mode Mode, changeCount int)
	SyncConflict(entityType string, serverCursor, clientCursor time.Time)
	SyncError(entityType string, kind string)
}

// NopObserver is an Observer that ignores every event.
type NopObserver struct{}

func (NopObserver) SyncStarted(string, Mode)                  {}
func (NopObserver) SyncCompleted(string, Mode, int)           {}
func (NopObserver) SyncConflict(string, time.Time, time.Time) {}
func (NopObserver) SyncError(string, string)                  {}
