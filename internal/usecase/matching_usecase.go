package usecase

import (
	"context"

	"gtfstrigger/internal/domain/entity"
)

// MatchingUsecase defines the interface for the scheduled matching pass
type MatchingUsecase interface {
	// RunPass loads every subscription, fetches each distinct feed once and
	// notifies every matching (vehicle, subscription) pair. Fetch, delivery and
	// persistence failures are counted in the report and never abort the pass.
	// An error is returned only when the pass could not run at all.
	RunPass(ctx context.Context) (*entity.PassReport, error)
}
