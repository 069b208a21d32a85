package cli

import (
	"context"
	"errors"
	"fmt"

	syncer "github.com/iudanet/listkeeper/internal/sync"
)

// RunSync синхронизирует все коллекции: сначала обновляет реплику,
// затем отправляет накопленные локальные изменения. С force свежесть
// реплики игнорируется и скачивание выполняется безусловно.
func RunSync(ctx context.Context, deps *Deps, force bool) error {
	for _, entityType := range entityTypes {
		var result *syncer.Result
		var err error
		if force {
			result, err = deps.Coordinator.ForceSync(ctx, entityType)
		} else {
			result, err = deps.Coordinator.CheckAndSync(ctx, entityType)
		}
		if err != nil {
			return fmt.Errorf("sync %s failed: %w", entityType, err)
		}

		if result.Skipped {
			fmt.Printf("%-5s fresh, skipped\n", entityType)
			continue
		}
		fmt.Printf("%-5s %s sync: %d record(s) applied\n", entityType, result.Mode, result.Applied)
	}

	// Реплика свежая, локальные изменения можно отправлять
	pending, err := deps.Coordinator.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("read pending log: %w", err)
	}
	if pending > 0 {
		if err := uploadPending(ctx, deps); err != nil {
			return err
		}
	}

	return nil
}

// uploadPending отправляет журнал локальных изменений по всем коллекциям
func uploadPending(ctx context.Context, deps *Deps) error {
	for _, entityType := range entityTypes {
		result, err := deps.Coordinator.Upload(ctx, entityType)
		if err != nil {
			var conflict *syncer.ConflictError
			switch {
			case errors.As(err, &conflict):
				// Проигравшая запись отброшена, реплика уже обновлена
				fmt.Printf("%-5s conflict: local changes discarded, replica refreshed\n", entityType)
				continue
			case errors.Is(err, syncer.ErrStaleWrite):
				return fmt.Errorf("could not refresh stale replica before upload: %w", err)
			default:
				return fmt.Errorf("upload %s failed: %w", entityType, err)
			}
		}
		if !result.Skipped && result.Applied > 0 {
			fmt.Printf("%-5s uploaded %d change(s)\n", entityType, result.Applied)
		}
	}
	return nil
}
