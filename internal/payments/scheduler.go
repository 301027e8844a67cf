package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a Realizer on a cron schedule. Overlapping runs are skipped.
type Scheduler struct {
	cron     *cron.Cron
	realizer *Realizer
	timeout  time.Duration
}

// NewScheduler registers the realizer under the standard five-field cron
// spec (or a descriptor such as "@hourly"). Each run is bounded by timeout.
func NewScheduler(realizer *Realizer, spec string, timeout time.Duration) (*Scheduler, error) {
	logger := slogLogger{}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		realizer: realizer,
		timeout:  timeout,
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid payments schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start begins running in the background.
func (s *Scheduler) Start() {
	slog.Info("Payments scheduler started")
	s.cron.Start()
}

// Stop stops scheduling and waits for a running pass to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("Payments scheduler stopped")
	case <-ctx.Done():
		slog.Warn("Payments scheduler stop timed out", "error", ctx.Err())
	}
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.realizer.Run(ctx); err != nil {
		slog.Error("Payments realization failed", "error", err)
	}
}

// slogLogger adapts cron's logger to slog.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
