package handler

import (
	"context"
	"log/slog"
	"time"

	"gtfstrigger/config"
	deliverycontext "gtfstrigger/internal/delivery/context"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Pass triggers, carried in logs.
const (
	TriggerTicker = "ticker"
	TriggerManual = "manual"
	TriggerPush   = "push"
)

// PassRunner runs one matching pass with its own request id, logger and timeout.
type PassRunner struct {
	matchingUC usecase.MatchingUsecase
	timeout    time.Duration
	logger     *slog.Logger
}

// PassRunnerParams holds dependencies for the PassRunner
type PassRunnerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPassRunner creates a new PassRunner
func NewPassRunner(params PassRunnerParams) *PassRunner {
	var timeout time.Duration
	if params.Config.Matcher != nil {
		timeout = params.Config.Matcher.PassTimeout
	}

	return &PassRunner{
		matchingUC: params.MatchingUC,
		timeout:    timeout,
		logger:     params.Logger,
	}
}

// Run runs a pass. requestID may be empty, then one is generated.
func (r *PassRunner) Run(ctx context.Context, trigger, requestID string) (*entity.PassReport, error) {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger := r.logger.With(
		slog.String("request_id", requestID),
		slog.String("trigger", trigger),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.DebugContext(ctx, "[Matcher] Starting matching pass")

	report, err := r.matchingUC.RunPass(ctx)
	if err != nil {
		return nil, err
	}

	return report, nil
}
