package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	syncer "github.com/iudanet/listkeeper/internal/sync"
)

// RunWatch запускает фоновый цикл синхронизации и работает до
// прерывания по Ctrl+C
func RunWatch(ctx context.Context, deps *Deps) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := syncer.NewScheduler(deps.Coordinator, syncer.SchedulerConfig{
		EntityTypes: entityTypes,
		Logger:      deps.Logger,
	})

	fmt.Println("watching for changes, press Ctrl+C to stop")
	scheduler.Trigger()

	if err := scheduler.Run(ctx); err != nil {
		return fmt.Errorf("sync loop failed: %w", err)
	}

	fmt.Println("\nstopped")
	return nil
}
