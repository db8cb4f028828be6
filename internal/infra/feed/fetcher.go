package feed

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/geo"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/util"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/protobuf/proto"
)

// maxFeedBytes caps how much of a response body is read.
const maxFeedBytes = 64 << 20

// Reasons reported by FetchError.
const (
	ReasonUnknownFeed = "unknown_feed"
	ReasonTransport   = "transport"
	ReasonStatus      = "status"
	ReasonDecode      = "decode"
)

// FetchError describes why a feed could not be fetched.
type FetchError struct {
	FeedKey    string
	Reason     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch feed %s: %s: HTTP %d", e.FeedKey, e.Reason, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch feed %s: %s: %v", e.FeedKey, e.Reason, e.Err)
	}

	return fmt.Sprintf("fetch feed %s: %s", e.FeedKey, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// GTFSRTFetcher downloads GTFS-RT vehicle position feeds over HTTP.
type GTFSRTFetcher struct {
	client   *http.Client
	registry service.FeedRegistry
	logger   *slog.Logger
	now      func() time.Time
}

// FetcherParams holds dependencies for the fetcher
type FetcherParams struct {
	fx.In

	Config   *config.Config
	Registry service.FeedRegistry
	Logger   *slog.Logger
}

// NewGTFSRTFetcher creates a fetcher with the configured per-call timeout
func NewGTFSRTFetcher(params FetcherParams) service.FeedFetcher {
	return NewGTFSRTFetcherWithClient(
		&http.Client{Timeout: params.Config.Feeds.FetchTimeout},
		params.Registry,
		params.Logger,
	)
}

// NewGTFSRTFetcherWithClient creates a fetcher around an existing client.
func NewGTFSRTFetcherWithClient(client *http.Client, registry service.FeedRegistry, logger *slog.Logger) *GTFSRTFetcher {
	return &GTFSRTFetcher{
		client:   client,
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
}

// Fetch downloads and decodes the feed registered under feedKey.
// Every failure is returned as a *FetchError.
func (f *GTFSRTFetcher) Fetch(ctx context.Context, feedKey string) (*entity.FeedSnapshot, error) {
	def, ok := f.registry.Lookup(feedKey)
	if !ok {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonUnknownFeed}
	}

	started := f.now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, def.URL, nil)
	if err != nil {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonTransport, Err: errors.WithStack(err)}
	}
	req.Header.Set("Accept", "application/x-protobuf")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonTransport, Err: errors.WithStack(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonTransport, Err: errors.WithStack(err)}
	}

	var message gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(body, &message); err != nil {
		return nil, &FetchError{FeedKey: feedKey, Reason: ReasonDecode, Err: errors.WithStack(err)}
	}

	snapshot := entity.NewFeedSnapshot(feedKey, started, Vehicles(&message))
	snapshot.Size = len(message.GetEntity())
	if ts := message.GetHeader().GetTimestamp(); ts > 0 {
		snapshot.HeaderTime = time.Unix(int64(ts), 0).UTC()
	}

	f.logger.Debug("Fetched feed",
		slog.String("feed_key", feedKey),
		slog.Int("entities", snapshot.Size),
		slog.String("bytes", util.FormatBytes(int64(len(body)))),
		slog.String("elapsed", util.FormatDuration(f.now().Sub(started))),
	)

	return snapshot, nil
}

// Vehicles yields one snapshot per entity carrying a vehicle position.
// Entities without a vehicle (trip updates, alerts) are skipped.
func Vehicles(message *gtfsrtpb.FeedMessage) iter.Seq[entity.VehicleSnapshot] {
	return func(yield func(entity.VehicleSnapshot) bool) {
		for _, e := range message.GetEntity() {
			vehicle := e.GetVehicle()
			if vehicle == nil {
				continue
			}
			if !yield(toSnapshot(vehicle)) {
				return
			}
		}
	}
}

func toSnapshot(vehicle *gtfsrtpb.VehiclePosition) entity.VehicleSnapshot {
	position := geo.Missing()
	if p := vehicle.GetPosition(); p != nil {
		position = orb.Point{float64(p.GetLongitude()), float64(p.GetLatitude())}
	}

	return entity.VehicleSnapshot{
		VehicleID:            vehicle.GetVehicle().GetId(),
		Position:             position,
		TripID:               vehicle.GetTrip().GetTripId(),
		StopID:               vehicle.GetStopId(),
		CurrentStopSequence:  vehicle.GetCurrentStopSequence(),
		OccupancyStatus:      int32(vehicle.GetOccupancyStatus()),
		ScheduleRelationship: int32(vehicle.GetTrip().GetScheduleRelationship()),
	}
}
