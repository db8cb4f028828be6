package service

import (
	"context"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/errors"
)

// ErrStopNotFound is returned when the stop lookup has no entry for the stop id.
var ErrStopNotFound = errors.New("stop not found")

// StopResolver resolves a stop id of a feed to its name and position.
type StopResolver interface {
	ResolveStop(ctx context.Context, stopID, feedKey string) (*entity.Stop, error)
}
