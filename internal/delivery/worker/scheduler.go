package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery"
	"gtfstrigger/internal/delivery/worker/handler"
	domainerrors "gtfstrigger/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInterval = time.Minute

// scheduler runs a matching pass on every tick until stopped
type scheduler struct {
	runner        *handler.PassRunner
	interval      time.Duration
	runOnStart    bool
	disableTicker bool
	logger        *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// SchedulerParams holds dependencies for the scheduler
type SchedulerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Runner *handler.PassRunner
}

// NewScheduler creates the interval trigger of the matcher
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.Runner, params.Cfg.Matcher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.stop()

			return nil
		},
	})

	return s, nil
}

func newScheduler(runner *handler.PassRunner, cfg *config.MatcherConfig, logger *slog.Logger) *scheduler {
	s := &scheduler{
		runner:   runner,
		interval: defaultInterval,
		logger:   logger,
		done:     make(chan struct{}),
	}
	if cfg != nil {
		if cfg.Interval > 0 {
			s.interval = cfg.Interval
		}
		s.runOnStart = cfg.RunOnStart
		s.disableTicker = cfg.DisableTicker
	}

	return s
}

// Serve blocks until the scheduler is stopped or ctx is done
func (s *scheduler) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	if s.runOnStart {
		s.tick(ctx)
	}

	if s.disableTicker {
		s.logger.Info("[Matcher] Interval trigger disabled, waiting for /run or /push")
		<-ctx.Done()

		return nil
	}

	s.logger.Info("[Matcher] Starting interval trigger", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *scheduler) tick(ctx context.Context) {
	_, err := s.runner.Run(ctx, handler.TriggerTicker, "")
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrPassInProgress):
		s.logger.Warn("[Matcher] Previous pass still running, tick skipped")
	default:
		s.logger.Error("[Matcher] Matching pass failed", slog.Any("error", err))
	}
}

func (s *scheduler) stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("[Matcher] Stopping interval trigger")
		close(s.done)
	})
}
