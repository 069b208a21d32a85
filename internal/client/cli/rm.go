package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/listkeeper/internal/client/storage"
	"github.com/iudanet/listkeeper/internal/models"
)

// RunRm помечает запись удаленной. Строка остается в хранилище, чтобы
// удаление попало в дельту при синхронизации.
func RunRm(ctx context.Context, deps *Deps, entityType, id string) error {
	if !models.KnownEntityType(entityType) {
		return fmt.Errorf("unknown entity type %q, expected task, list or note", entityType)
	}

	record, err := deps.Store.Get(ctx, deps.OwnerID, entityType, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return fmt.Errorf("%s %s not found", entityType, id)
		}
		return fmt.Errorf("read record: %w", err)
	}
	if record.Deleted() {
		fmt.Printf("%s %s is already deleted\n", entityType, id)
		return nil
	}

	if err := deps.Store.SoftDelete(ctx, deps.OwnerID, entityType, id, deps.Clock.Now().UTC()); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if err := deps.Coordinator.RecordLocal(ctx, models.OpDelete, entityType, id); err != nil {
		return fmt.Errorf("record pending change: %w", err)
	}

	fmt.Printf("removed %s %s\n", entityType, id)
	return pushPending(ctx, deps, entityType)
}
