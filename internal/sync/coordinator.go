package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/listkeeper/internal/client/storage"
	"github.com/iudanet/listkeeper/internal/models"
)

// Coordinator orchestrates synchronization of the local replica: staleness
// checks, per-(owner, entity type) locking, the delta-versus-full choice
// with a single fallback, ordered application, cursor advancement and the
// upload path. It never retries on its own; re-invocation after failure is
// the Scheduler's job.
//
// A Coordinator instance owns one owner's replica. Collaborators are
// injected at construction so that multiple independent instances can
// coexist, one per test or per account.
type Coordinator struct {
	records   storage.RecordStore
	cursors   storage.CursorStore
	transport Transport
	clock     Clock
	detector  *Detector
	observer  Observer
	logger    *slog.Logger
	locks     *lockTable
	pending   storage.PendingStore
	ownerID   string
}

// Config collects the Coordinator's collaborators. Records, Cursors,
// Transport and OwnerID are required; the rest default to the system clock,
// the built-in thresholds, a nop observer and the default logger. Pending
// defaults to an in-process log; clients whose edits must survive the
// process supply a store-backed one.
type Config struct {
	Records   storage.RecordStore
	Cursors   storage.CursorStore
	Pending   storage.PendingStore
	Transport Transport
	Clock     Clock
	Detector  *Detector
	Observer  Observer
	Logger    *slog.Logger
	OwnerID   string
}

// NewCoordinator creates a Coordinator from the given configuration.
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	if cfg.Detector == nil {
		cfg.Detector = NewDetector(DefaultThresholds())
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Pending == nil {
		cfg.Pending = newMemoryPendingLog()
	}
	return &Coordinator{
		records:   cfg.Records,
		cursors:   cfg.Cursors,
		transport: cfg.Transport,
		clock:     cfg.Clock,
		detector:  cfg.Detector,
		observer:  cfg.Observer,
		logger:    cfg.Logger,
		locks:     newLockTable(),
		pending:   cfg.Pending,
		ownerID:   cfg.OwnerID,
	}
}

// Result summarizes one completed sync attempt.
type Result struct {
	ServerTime time.Time
	Mode       Mode
	Applied    int  // records applied locally
	Skipped    bool // replica still fresh, or trigger coalesced with an in-flight sync
}

// CheckAndSync is the entry point for every trigger source: timer tick,
// focus or visibility event, manual request. If the replica is fresh it is
// a no-op. If a sync for the pair is already in flight the trigger is
// dropped, not queued.
func (c *Coordinator) CheckAndSync(ctx context.Context, entityType string) (*Result, error) {
	cursor, err := c.cursors.GetCursor(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}
	if !c.detector.IsStale(entityType, cursor, c.clock.Now()) {
		return &Result{Skipped: true}, nil
	}

	if !c.locks.TryAcquire(c.ownerID, entityType) {
		c.logger.Debug("sync already in flight, trigger dropped", "type", entityType)
		return &Result{Skipped: true}, nil
	}
	defer c.locks.Release(c.ownerID, entityType)

	// Another trigger may have finished a sync between our staleness check
	// and the lock acquisition.
	cursor, err = c.cursors.GetCursor(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}
	if !c.detector.IsStale(entityType, cursor, c.clock.Now()) {
		return &Result{Skipped: true}, nil
	}

	return c.syncLocked(ctx, entityType, cursor)
}

// ForceSync refreshes the replica regardless of staleness. Used by the
// manual CLI path and after a detected conflict. A concurrent sync still
// coalesces the call.
func (c *Coordinator) ForceSync(ctx context.Context, entityType string) (*Result, error) {
	if !c.locks.TryAcquire(c.ownerID, entityType) {
		c.logger.Debug("sync already in flight, trigger dropped", "type", entityType)
		return &Result{Skipped: true}, nil
	}
	defer c.locks.Release(c.ownerID, entityType)

	cursor, err := c.cursors.GetCursor(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}
	return c.syncLocked(ctx, entityType, cursor)
}

// syncLocked runs one download attempt. The caller holds the pair's lock.
// Delta is preferred whenever a cursor exists; a transport failure of the
// delta path falls back to full sync exactly once within the attempt.
// Data errors (validation, auth) never trigger the fallback.
func (c *Coordinator) syncLocked(ctx context.Context, entityType string, cursor *models.Cursor) (*Result, error) {
	if cursor != nil {
		c.observer.SyncStarted(entityType, ModeDelta)
		delta, err := c.transport.DownloadChanges(ctx, c.ownerID, entityType, cursor.LastSync)
		if err == nil {
			res, applyErr := c.applyDelta(ctx, entityType, delta)
			if applyErr != nil {
				c.observer.SyncError(entityType, errorKind(applyErr))
				return nil, applyErr
			}
			c.observer.SyncCompleted(entityType, ModeDelta, res.Applied)
			return res, nil
		}

		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			c.observer.SyncError(entityType, errorKind(err))
			return nil, err
		}
		c.logger.Warn("delta fetch failed, falling back to full sync",
			"type", entityType, "error", err)
	}

	c.observer.SyncStarted(entityType, ModeFull)
	res, err := c.fullSync(ctx, entityType)
	if err != nil {
		c.observer.SyncError(entityType, errorKind(err))
		return nil, err
	}
	c.observer.SyncCompleted(entityType, ModeFull, res.Applied)
	return res, nil
}

// fullSync replaces the whole local collection with the server snapshot.
// The store's ReplaceAll contract guarantees all-or-nothing application.
// Local edits still awaiting upload are carried over the replacement:
// the snapshot has not seen them yet and must not erase them.
func (c *Coordinator) fullSync(ctx context.Context, entityType string) (*Result, error) {
	snapshot, err := c.transport.DownloadFull(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("full fetch failed: %w", err)
	}
	if snapshot == nil || snapshot.ServerTime.IsZero() {
		return nil, fmt.Errorf("%w: snapshot missing server time", ErrValidation)
	}
	for _, r := range snapshot.Records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %s: %v", ErrValidation, r.ID, err)
		}
	}

	records, err := c.overlayPending(ctx, entityType, snapshot.Records)
	if err != nil {
		return nil, err
	}

	if err := c.records.ReplaceAll(ctx, c.ownerID, entityType, records); err != nil {
		return nil, fmt.Errorf("failed to replace collection: %w", err)
	}
	if err := c.cursors.SetCursor(ctx, c.ownerID, entityType, snapshot.ServerTime); err != nil {
		return nil, fmt.Errorf("failed to advance cursor: %w", err)
	}

	c.logger.Info("full sync completed",
		"type", entityType,
		"records", len(snapshot.Records),
		"server_time", snapshot.ServerTime)

	return &Result{
		Mode:       ModeFull,
		Applied:    len(snapshot.Records),
		ServerTime: snapshot.ServerTime,
	}, nil
}

// overlayPending folds un-uploaded local edits into a server snapshot:
// records with a pending create or update keep their local version,
// records with a pending delete are left out. Reads the local versions
// before ReplaceAll discards them.
func (c *Coordinator) overlayPending(ctx context.Context, entityType string, serverRecords []*models.Record) ([]*models.Record, error) {
	pending, err := c.pending.ListPending(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending log: %w", err)
	}
	if len(pending) == 0 {
		return serverRecords, nil
	}

	local := make(map[string]*models.Record)
	dropped := make(map[string]bool)
	for _, p := range pending {
		switch p.Op {
		case models.OpDelete:
			dropped[p.RecordID] = true
			delete(local, p.RecordID)
		case models.OpCreate, models.OpUpdate:
			record, err := c.records.Get(ctx, c.ownerID, entityType, p.RecordID)
			if err != nil {
				if errors.Is(err, storage.ErrRecordNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to load pending record %s: %w", p.RecordID, err)
			}
			local[p.RecordID] = record
			delete(dropped, p.RecordID)
		}
	}

	out := make([]*models.Record, 0, len(serverRecords)+len(local))
	for _, r := range serverRecords {
		if dropped[r.ID] {
			continue
		}
		if kept, ok := local[r.ID]; ok {
			out = append(out, kept)
			delete(local, r.ID)
			continue
		}
		out = append(out, r)
	}
	for _, r := range local {
		out = append(out, r)
	}
	return out, nil
}

// applyDelta applies a classified change set in the fixed order
// deleted -> updated -> created. Deleting before recreating avoids
// transient duplicate-id states when an id is deleted and later reused.
// Each individual mutation is idempotent, so a delta interrupted by the
// safety timeout is safely re-appliable on the next attempt.
func (c *Coordinator) applyDelta(ctx context.Context, entityType string, delta *Delta) (*Result, error) {
	if delta == nil || delta.Changes == nil || delta.ServerTime.IsZero() {
		return nil, fmt.Errorf("%w: empty delta payload", ErrValidation)
	}
	cs := delta.Changes
	for _, r := range cs.Updated {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %s: %v", ErrValidation, r.ID, err)
		}
	}
	for _, r := range cs.Created {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %s: %v", ErrValidation, r.ID, err)
		}
	}

	for _, id := range cs.Deleted {
		if err := c.records.SoftDelete(ctx, c.ownerID, entityType, id, delta.ServerTime); err != nil {
			return nil, fmt.Errorf("failed to apply deletion of %s: %w", id, err)
		}
	}
	for _, r := range cs.Updated {
		if err := c.records.Upsert(ctx, r); err != nil {
			return nil, fmt.Errorf("failed to apply update of %s: %w", r.ID, err)
		}
	}
	for _, r := range cs.Created {
		if err := c.records.Upsert(ctx, r); err != nil {
			return nil, fmt.Errorf("failed to apply creation of %s: %w", r.ID, err)
		}
	}

	if err := c.cursors.SetCursor(ctx, c.ownerID, entityType, delta.ServerTime); err != nil {
		return nil, fmt.Errorf("failed to advance cursor: %w", err)
	}

	c.logger.Info("delta sync completed",
		"type", entityType,
		"created", len(cs.Created),
		"updated", len(cs.Updated),
		"deleted", len(cs.Deleted),
		"server_time", delta.ServerTime)

	return &Result{
		Mode:       ModeDelta,
		Applied:    cs.Total(),
		ServerTime: delta.ServerTime,
	}, nil
}

// RecordLocal notes a local edit for the next upload. Append-only until
// the upload flushes the log.
func (c *Coordinator) RecordLocal(ctx context.Context, op models.Op, entityType, recordID string) error {
	err := c.pending.AppendPending(ctx, models.PendingChange{
		Op:         op,
		OwnerID:    c.ownerID,
		EntityType: entityType,
		RecordID:   recordID,
		At:         c.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to record local edit: %w", err)
	}
	return nil
}

// PendingCount returns the number of local edits awaiting upload.
func (c *Coordinator) PendingCount(ctx context.Context) (int, error) {
	return c.pending.CountPending(ctx, c.ownerID)
}

// Upload pushes pending local changes to the server. A locally stale
// replica is recovered in place: the collection is refreshed first, then
// the push proceeds on the advanced cursor. ErrStaleWrite surfaces only
// when that refresh itself fails. A conflict reported by the server
// discards the pending log, forces a refresh within the same lock hold,
// and surfaces as *ConflictError; the write is never retried
// automatically.
func (c *Coordinator) Upload(ctx context.Context, entityType string) (*Result, error) {
	if !c.locks.TryAcquire(c.ownerID, entityType) {
		c.logger.Debug("sync already in flight, upload dropped", "type", entityType)
		return &Result{Skipped: true}, nil
	}
	defer c.locks.Release(c.ownerID, entityType)

	cursor, err := c.cursors.GetCursor(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}
	if c.detector.IsStale(entityType, cursor, c.clock.Now()) {
		c.logger.Info("stale replica on upload, refreshing first", "type", entityType)
		if _, refreshErr := c.syncLocked(ctx, entityType, cursor); refreshErr != nil {
			return nil, fmt.Errorf("%w: refresh before upload failed: %w", ErrStaleWrite, refreshErr)
		}
		cursor, err = c.cursors.GetCursor(ctx, c.ownerID, entityType)
		if err != nil {
			return nil, fmt.Errorf("failed to load cursor: %w", err)
		}
	}

	pending, err := c.pending.ListPending(ctx, c.ownerID, entityType)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending log: %w", err)
	}
	if len(pending) == 0 {
		return &Result{Skipped: true}, nil
	}

	changes, err := c.collectPending(ctx, entityType, pending)
	if err != nil {
		return nil, err
	}

	c.observer.SyncStarted(entityType, ModeUpload)
	result, err := c.transport.UploadChanges(ctx, c.ownerID, entityType, changes, cursor.LastSync)
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			// Losing write: discard it and refresh before anyone retries.
			if clearErr := c.pending.ClearPending(ctx, c.ownerID, entityType); clearErr != nil {
				c.logger.Error("failed to discard pending log after conflict",
					"type", entityType, "error", clearErr)
			}
			c.observer.SyncConflict(entityType, conflict.ServerCursor, conflict.ClientCursor)
			if _, refreshErr := c.syncLocked(ctx, entityType, cursor); refreshErr != nil {
				c.logger.Error("refresh after conflict failed",
					"type", entityType, "error", refreshErr)
			}
			return nil, conflict
		}
		// Pending log is kept for replay on the next attempt.
		c.observer.SyncError(entityType, errorKind(err))
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if err := c.pending.ClearPending(ctx, c.ownerID, entityType); err != nil {
		return nil, fmt.Errorf("failed to clear pending log: %w", err)
	}
	if err := c.cursors.SetCursor(ctx, c.ownerID, entityType, result.ServerTime); err != nil {
		return nil, fmt.Errorf("failed to advance cursor: %w", err)
	}
	c.observer.SyncCompleted(entityType, ModeUpload, result.Applied)

	c.logger.Info("upload completed",
		"type", entityType,
		"changes", changes.Total(),
		"applied", result.Applied,
		"server_time", result.ServerTime)

	return &Result{
		Mode:       ModeUpload,
		Applied:    result.Applied,
		ServerTime: result.ServerTime,
	}, nil
}

// collectPending folds the pending log into a change set. A delete wins
// over every earlier op for the same record; a create followed by updates
// stays a create, since the created record already carries the latest
// payload.
func (c *Coordinator) collectPending(ctx context.Context, entityType string, pending []models.PendingChange) (*models.ChangeSet, error) {
	ops := make(map[string]models.Op)
	var order []string
	for _, p := range pending {
		prev, seen := ops[p.RecordID]
		if !seen {
			order = append(order, p.RecordID)
			ops[p.RecordID] = p.Op
			continue
		}
		switch {
		case p.Op == models.OpDelete:
			ops[p.RecordID] = models.OpDelete
		case prev == models.OpCreate:
			// creation subsumes later updates
		default:
			ops[p.RecordID] = p.Op
		}
	}

	cs := &models.ChangeSet{}
	for _, id := range order {
		switch ops[id] {
		case models.OpDelete:
			cs.Deleted = append(cs.Deleted, id)
		case models.OpCreate, models.OpUpdate:
			record, err := c.records.Get(ctx, c.ownerID, entityType, id)
			if err != nil {
				if errors.Is(err, storage.ErrRecordNotFound) {
					c.logger.Warn("pending record vanished locally, skipping", "id", id)
					continue
				}
				return nil, fmt.Errorf("failed to load pending record %s: %w", id, err)
			}
			if ops[id] == models.OpCreate {
				cs.Created = append(cs.Created, record)
			} else {
				cs.Updated = append(cs.Updated, record)
			}
		}
	}
	return cs, nil
}
