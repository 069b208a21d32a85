package sync

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/listkeeper/internal/models"
)

// RecordSource is the read side of a record store the Computer scans.
// Implementations return every record of the owner's collection whose
// CreatedAt, UpdatedAt or DeletedAt is after since.
type RecordSource interface {
	ListSince(ctx context.Context, ownerID, entityType string, since time.Time) ([]*models.Record, error)
}

// Computer turns a cursor into a classified change set. Classification
// precedence per record, highest first and mutually exclusive:
//
//  1. DeletedAt set and after since  -> id goes into Deleted, regardless
//     of the create/update timestamps
//  2. CreatedAt after since          -> full record into Created; a later
//     update is subsumed, the created record already carries the latest
//     payload
//  3. UpdatedAt after since          -> full record into Updated
//
// Each list is ordered ascending by the timestamp that triggered inclusion,
// ties broken by id for determinism.
type Computer struct {
	source RecordSource
}

// NewComputer creates a Computer over the given record source.
func NewComputer(source RecordSource) *Computer {
	return &Computer{source: source}
}

// ComputeChanges produces a fresh ChangeSet for (ownerID, entityType)
// relative to since.
func (c *Computer) ComputeChanges(ctx context.Context, ownerID, entityType string, since time.Time) (*models.ChangeSet, error) {
	records, err := c.source.ListSince(ctx, ownerID, entityType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list records since %s: %w", since.Format(time.RFC3339Nano), err)
	}

	type deletion struct {
		at time.Time
		id string
	}

	cs := &models.ChangeSet{}
	var deletions []deletion

	for _, r := range records {
		switch {
		case r.Deleted() && r.DeletedAt.After(since):
			deletions = append(deletions, deletion{at: r.DeletedAt, id: r.ID})
		case r.CreatedAt.After(since):
			cs.Created = append(cs.Created, r.Clone())
		case r.UpdatedAt.After(since):
			cs.Updated = append(cs.Updated, r.Clone())
		}
	}

	sort.Slice(cs.Created, func(i, j int) bool {
		a, b := cs.Created[i], cs.Created[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(cs.Updated, func(i, j int) bool {
		a, b := cs.Updated[i], cs.Updated[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.ID < b.ID
	})
	sort.Slice(deletions, func(i, j int) bool {
		a, b := deletions[i], deletions[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		return a.id < b.id
	})

	for _, d := range deletions {
		cs.Deleted = append(cs.Deleted, d.id)
	}

	return cs, nil
}
