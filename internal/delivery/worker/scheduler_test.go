package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery/worker/handler"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	mockUsecase "gtfstrigger/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, matcher *config.MatcherConfig) (*scheduler, *mockUsecase.MockMatchingUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockMatchingUsecase(t)
	runner := handler.NewPassRunner(handler.PassRunnerParams{
		MatchingUC: uc,
		Config:     &config.Config{Matcher: matcher},
		Logger:     logger,
	})

	return newScheduler(runner, matcher, logger), uc
}

func serveInBackground(s *scheduler) <-chan error {
	served := make(chan error, 1)
	go func() {
		served <- s.Serve(context.Background())
	}()

	return served
}

func TestScheduler_RunOnStartWithoutTicker(t *testing.T) {
	t.Parallel()

	s, uc := newTestScheduler(t, &config.MatcherConfig{RunOnStart: true, DisableTicker: true})
	ran := make(chan struct{})
	uc.EXPECT().RunPass(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.PassReport, error) {
			close(ran)

			return &entity.PassReport{}, nil
		}).Once()

	served := serveInBackground(s)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("pass did not run on start")
	}

	s.stop()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_TicksUntilStopped(t *testing.T) {
	t.Parallel()

	s, uc := newTestScheduler(t, &config.MatcherConfig{Interval: 5 * time.Millisecond})
	var calls atomic.Int32
	uc.EXPECT().RunPass(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.PassReport, error) {
			// A skipped tick does not stop the schedule.
			if calls.Add(1) == 1 {
				return nil, domainerrors.ErrPassInProgress
			}

			return &entity.PassReport{}, nil
		})

	served := serveInBackground(s)

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.stop()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestNewScheduler_StopHook(t *testing.T) {
	t.Parallel()

	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(SchedulerParams{
		Lc:     lc,
		Cfg:    &config.Config{Matcher: &config.MatcherConfig{DisableTicker: true}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Runner: handler.NewPassRunner(handler.PassRunnerParams{
			MatchingUC: mockUsecase.NewMockMatchingUsecase(t),
			Config:     &config.Config{},
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
	})
	require.NoError(t, err)

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()
	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on the lifecycle stop hook")
	}
}
