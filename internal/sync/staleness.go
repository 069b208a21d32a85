package sync

import (
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// Thresholds maps an entity type to the maximum tolerated elapsed time
// since the last successful sync. Fast-changing types get short thresholds,
// rarely-changing types long ones. The mapping is configuration supplied by
// the caller, not logic.
type Thresholds map[string]time.Duration

// DefaultThreshold applies to entity types missing from the map.
const DefaultThreshold = 5 * time.Minute

// DefaultThresholds returns the built-in per-type staleness thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		models.EntityTypeTask: 3 * time.Minute,
		models.EntityTypeList: 10 * time.Minute,
		models.EntityTypeNote: 30 * time.Minute,
	}
}

// Detector decides whether a replica is still trustworthy by comparing the
// cursor age against the configured threshold. It has no side effects.
type Detector struct {
	thresholds Thresholds
}

// NewDetector creates a Detector over the given thresholds.
func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{thresholds: thresholds}
}

// Threshold returns the staleness threshold for the entity type, falling
// back to DefaultThreshold for unknown types.
func (d *Detector) Threshold(entityType string) time.Duration {
	if t, ok := d.thresholds[entityType]; ok {
		return t
	}
	return DefaultThreshold
}

// IsStale reports whether the replica behind the cursor must be refreshed.
// An absent cursor is maximally stale. The boundary is strict: an elapsed
// time exactly equal to the threshold is still fresh.
func (d *Detector) IsStale(entityType string, cursor *models.Cursor, now time.Time) bool {
	if cursor == nil {
		return true
	}
	return now.Sub(cursor.LastSync) > d.Threshold(entityType)
}
