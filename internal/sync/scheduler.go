package sync

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
)

// Runner is the coordinator surface the Scheduler drives.
type Runner interface {
	CheckAndSync(ctx context.Context, entityType string) (*Result, error)
}

// SchedulerConfig tunes the trigger loop.
type SchedulerConfig struct {
	// EntityTypes are synced in order on every pass.
	EntityTypes []string

	// BaseInterval is the periodic tick at full activity (default 30s).
	BaseInterval time.Duration

	// MaxInterval caps the adaptive interval (default 8m).
	MaxInterval time.Duration

	// AttemptTimeout bounds one sync pass per entity type; on expiry the
	// attempt is aborted through context cancellation and the coordinator's
	// error path releases the lock (default 1m).
	AttemptTimeout time.Duration

	Logger *slog.Logger
}

// Scheduler drives the Coordinator from three trigger classes: the periodic
// tick, reactive triggers (foreground, connectivity) via Trigger, and manual
// requests via the same channel. The tick interval is adaptive: each pass
// that observes no activity doubles it up to MaxInterval, any observed
// activity resets it to BaseInterval.
type Scheduler struct {
	runner   Runner
	logger   *slog.Logger
	trigger  chan struct{}
	activity atomic.Bool
	cfg      SchedulerConfig
}

// NewScheduler creates a Scheduler over the given runner.
func NewScheduler(runner Runner, cfg SchedulerConfig) *Scheduler {
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = 30 * time.Second
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 8 * time.Minute
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Scheduler{
		runner:  runner,
		logger:  cfg.Logger,
		trigger: make(chan struct{}, 1),
		cfg:     cfg,
	}
}

// Trigger requests an immediate pass. Non-blocking: a pass already pending
// absorbs the request.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// NotifyActivity marks user activity, resetting the adaptive interval to
// its base value on the next tick.
func (s *Scheduler) NotifyActivity() {
	s.activity.Store(true)
}

// Run blocks driving the sync loop until ctx is canceled, then returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	backoff := s.newBackoff()
	interval, _ := backoff.Next() // base
	timer := time.NewTimer(interval)
	defer timer.Stop()

	s.logger.Info("scheduler started",
		"types", s.cfg.EntityTypes,
		"base_interval", s.cfg.BaseInterval,
		"max_interval", s.cfg.MaxInterval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return nil

		case <-s.trigger:
			// Reactive and manual triggers imply activity.
			s.activity.Store(true)
			s.runPass(ctx)

		case <-timer.C:
			applied := s.runPass(ctx)
			if applied || s.activity.Swap(false) {
				backoff = s.newBackoff()
				interval, _ = backoff.Next()
			} else {
				interval, _ = backoff.Next()
			}
			timer.Reset(interval)
		}
	}
}

func (s *Scheduler) newBackoff() retry.Backoff {
	return retry.WithCappedDuration(s.cfg.MaxInterval, retry.NewExponential(s.cfg.BaseInterval))
}

// runPass syncs every configured entity type once, each under its own
// safety timeout. Reports whether any pass applied changes.
func (s *Scheduler) runPass(ctx context.Context) bool {
	applied := false
	for _, entityType := range s.cfg.EntityTypes {
		if ctx.Err() != nil {
			return applied
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		result, err := s.runner.CheckAndSync(attemptCtx, entityType)
		cancel()

		if err != nil {
			s.logger.Error("sync attempt failed",
				"type", entityType,
				"kind", errorKind(err),
				"error", err)
			continue
		}
		if result.Applied > 0 {
			applied = true
		}
	}
	return applied
}
