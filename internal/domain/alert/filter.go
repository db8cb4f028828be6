// Package alert decides whether a vehicle matches a subscription and whether
// a match should be notified. Both decisions take "now" as an argument.
package alert

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/geo"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/errors"
)

const (
	// DefaultStopRadiusMeters is how close a vehicle must be to its filter stop.
	DefaultStopRadiusMeters = 100.0

	// WideStopRadiusMeters applies to stops south of WideStopLatitude. The
	// Okinawa express bus feeds report positions too sparsely for 100 m.
	WideStopRadiusMeters = 3000.0

	// WideStopLatitude is the latitude below which WideStopRadiusMeters applies.
	WideStopLatitude = 30.0
)

// Evaluator evaluates a FilterSet against a VehicleSnapshot.
// The only side effect is the stop lookup for stop_id filters.
type Evaluator struct {
	stops  service.StopResolver
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator using stops to resolve stop_id filters.
func NewEvaluator(stops service.StopResolver, logger *slog.Logger) *Evaluator {
	return &Evaluator{
		stops:  stops,
		logger: logger,
	}
}

// Matches reports whether vehicle satisfies every present predicate of filters.
// Predicates short-circuit in a fixed order: trip, stop, date, start, end,
// weekday, target area. Any predicate that cannot be evaluated is a no-match.
func (e *Evaluator) Matches(ctx context.Context, vehicle entity.VehicleSnapshot, filters entity.FilterSet, feedKey string, now time.Time) bool {
	now = now.UTC()

	if filters.TripID != "" && vehicle.TripID != filters.TripID {
		return false
	}

	if filters.StopID != "" && !e.nearStop(ctx, vehicle, filters.StopID, feedKey) {
		return false
	}

	if filters.Date != "" && !sameDate(filters.Date, now) {
		return false
	}

	if filters.StartTime != "" {
		start, err := entity.ParseInstant(filters.StartTime)
		if err != nil || now.Before(start) {
			return false
		}
	}

	if filters.EndTime != "" {
		end, err := entity.ParseInstant(filters.EndTime)
		if err != nil || now.After(end) {
			return false
		}
	}

	if len(filters.Weekday) > 0 && !onWeekday(filters.Weekday, now) {
		return false
	}

	if filters.TargetArea != nil && !filters.TargetArea.Contains(vehicle.Position) {
		return false
	}

	return true
}

// StopRadius returns the proximity radius for a stop at the given latitude.
func StopRadius(stopLatitude float64) float64 {
	if stopLatitude < WideStopLatitude {
		return WideStopRadiusMeters
	}

	return DefaultStopRadiusMeters
}

func (e *Evaluator) nearStop(ctx context.Context, vehicle entity.VehicleSnapshot, stopID, feedKey string) bool {
	if e.stops == nil {
		return false
	}

	stop, err := e.stops.ResolveStop(ctx, stopID, feedKey)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, service.ErrStopNotFound) {
			level = slog.LevelDebug
		}
		e.logger.Log(ctx, level, "Stop lookup failed",
			slog.String("stop_id", stopID),
			slog.String("feed_key", feedKey),
			slog.Any("error", err),
		)

		return false
	}
	if stop == nil || stop.Name == "" {
		return false
	}

	return geo.IsWithinRadius(vehicle.Position, stop.Location, StopRadius(stop.Location.Lat()))
}

func sameDate(value string, now time.Time) bool {
	date, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return false
	}

	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

func onWeekday(names []string, now time.Time) bool {
	return slices.ContainsFunc(names, func(name string) bool {
		day, ok := entity.ParseWeekday(name)

		return ok && day == now.Weekday()
	})
}
