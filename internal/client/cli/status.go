package cli

import (
	"context"
	"fmt"
	"time"
)

// RunStatus показывает свежесть курсора каждой коллекции и число
// неотправленных локальных изменений
func RunStatus(ctx context.Context, deps *Deps) error {
	now := deps.Clock.Now()

	for _, entityType := range entityTypes {
		cursor, err := deps.Store.GetCursor(ctx, deps.OwnerID, entityType)
		if err != nil {
			return fmt.Errorf("read cursor for %s: %w", entityType, err)
		}

		records, err := deps.Store.ListActive(ctx, deps.OwnerID, entityType)
		if err != nil {
			return fmt.Errorf("list %s records: %w", entityType, err)
		}

		state := "fresh"
		if deps.Detector.IsStale(entityType, cursor, now) {
			state = "stale"
		}

		if cursor == nil {
			fmt.Printf("%-5s never synced (threshold %s), %d record(s)\n",
				entityType, deps.Detector.Threshold(entityType), len(records))
			continue
		}

		fmt.Printf("%-5s %s, last sync %s ago (threshold %s), %d record(s)\n",
			entityType, state,
			now.Sub(cursor.LastSync).Round(time.Second),
			deps.Detector.Threshold(entityType), len(records))
	}

	pending, err := deps.Coordinator.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("read pending log: %w", err)
	}
	if pending > 0 {
		fmt.Printf("%d pending local change(s) not yet uploaded\n", pending)
	}

	return nil
}
