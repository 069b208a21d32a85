package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/listkeeper/internal/client/storage"
	"github.com/iudanet/listkeeper/internal/models"
)

// RunDone отмечает задачу выполненной
func RunDone(ctx context.Context, deps *Deps, id string) error {
	record, err := deps.Store.Get(ctx, deps.OwnerID, models.EntityTypeTask, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("task %s not found", id)
		}
		return fmt.Errorf("read task: %w", err)
	}
	if record.Deleted() {
		return fmt.Errorf("task %s is deleted", id)
	}
	if record.Done {
		fmt.Printf("task %s is already done\n", id)
		return nil
	}

	record.Done = true
	record.UpdatedAt = deps.Clock.Now().UTC()
	if err := deps.Store.Upsert(ctx, record); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	if err := deps.Coordinator.RecordLocal(ctx, models.OpUpdate, models.EntityTypeTask, record.ID); err != nil {
		return fmt.Errorf("record pending change: %w", err)
	}

	fmt.Printf("done %s %s\n", record.ID, record.Title)
	return pushPending(ctx, deps, models.EntityTypeTask)
}
