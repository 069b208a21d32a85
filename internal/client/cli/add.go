package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/listkeeper/internal/models"
	syncer "github.com/iudanet/listkeeper/internal/sync"
)

// RunAdd создает запись локально и пытается сразу отправить ее на
// сервер. При устаревшей реплике изменение остается в журнале и
// уходит при следующей синхронизации.
func RunAdd(ctx context.Context, deps *Deps, entityType, title, body string) error {
	if !models.KnownEntityType(entityType) {
		return fmt.Errorf("unknown entity type %q, expected task, list or note", entityType)
	}
	if title == "" {
		return fmt.Errorf("title is empty")
	}

	now := deps.Clock.Now().UTC()
	record := &models.Record{
		ID:        uuid.New().String(),
		OwnerID:   deps.OwnerID,
		Type:      entityType,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := deps.Store.Upsert(ctx, record); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	if err := deps.Coordinator.RecordLocal(ctx, models.OpCreate, entityType, record.ID); err != nil {
		return fmt.Errorf("record pending change: %w", err)
	}

	fmt.Printf("added %s %s\n", entityType, record.ID)
	return pushPending(ctx, deps, entityType)
}

// pushPending отправляет журнал изменений одной коллекции. Ошибки
// доставки не фатальны: изменение уже записано локально и уйдет с
// ближайшей командой sync.
func pushPending(ctx context.Context, deps *Deps, entityType string) error {
	if err := uploadOne(ctx, deps, entityType); err != nil {
		fmt.Printf("upload deferred: %v\n", err)
		fmt.Println("run 'listkeeper sync' to push pending changes")
	}
	return nil
}

// uploadOne повторяет логику uploadPending для одной коллекции
func uploadOne(ctx context.Context, deps *Deps, entityType string) error {
	result, err := deps.Coordinator.Upload(ctx, entityType)
	if err != nil {
		var conflict *syncer.ConflictError
		if errors.As(err, &conflict) {
			fmt.Printf("%-5s conflict: local changes discarded, replica refreshed\n", entityType)
			return nil
		}
		return err
	}
	if !result.Skipped && result.Applied > 0 {
		fmt.Printf("%-5s uploaded %d change(s)\n", entityType, result.Applied)
	}
	return nil
}
