// Package stop resolves stop ids through the getBusStops lookup API.
package stop

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/service"

	"github.com/bluele/gcache"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HTTPResolver looks stops up in GET {baseURL}/getBusStops?gtfs_id=<id>.
// The full stop table of each gtfs_id is cached for the configured TTL.
type HTTPResolver struct {
	client   *http.Client
	baseURL  string
	registry service.FeedRegistry
	cache    gcache.Cache
	logger   *slog.Logger
}

// ResolverParams holds dependencies for the resolver
type ResolverParams struct {
	fx.In

	Config   *config.Config
	Registry service.FeedRegistry
	Logger   *slog.Logger
}

// NewHTTPResolver creates the stop resolver used by stop_id filters
func NewHTTPResolver(params ResolverParams) service.StopResolver {
	cfg := params.Config.StopLookup

	return NewHTTPResolverWithClient(
		&http.Client{Timeout: cfg.Timeout},
		cfg.BaseURL,
		params.Registry,
		cfg.CacheSize,
		cfg.CacheTTL,
		params.Logger,
	)
}

// NewHTTPResolverWithClient creates a resolver around an existing client.
func NewHTTPResolverWithClient(
	client *http.Client,
	baseURL string,
	registry service.FeedRegistry,
	cacheSize int,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *HTTPResolver {
	return &HTTPResolver{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		registry: registry,
		cache:    gcache.New(cacheSize).LRU().Expiration(cacheTTL).Build(),
		logger:   logger,
	}
}

// ResolveStop returns the stop stopID of feedKey, or service.ErrStopNotFound.
func (r *HTTPResolver) ResolveStop(ctx context.Context, stopID, feedKey string) (*entity.Stop, error) {
	def, ok := r.registry.Lookup(feedKey)
	if !ok || def.StopsGTFSID == "" {
		return nil, errors.Wrapf(service.ErrStopNotFound, "feed %q has no stop table", feedKey)
	}

	stops, err := r.stopTable(ctx, def.StopsGTFSID)
	if err != nil {
		return nil, err
	}

	found, ok := stops[stopID]
	if !ok {
		return nil, errors.Wrapf(service.ErrStopNotFound, "stop %q in %q", stopID, def.StopsGTFSID)
	}

	return &found, nil
}

func (r *HTTPResolver) stopTable(ctx context.Context, gtfsID string) (map[string]entity.Stop, error) {
	if cached, err := r.cache.Get(gtfsID); err == nil {
		if stops, ok := cached.(map[string]entity.Stop); ok {
			return stops, nil
		}
	}

	stops, err := r.download(ctx, gtfsID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(gtfsID, stops); err != nil {
		r.logger.Warn("Failed to cache stop table", slog.String("gtfs_id", gtfsID), slog.Any("error", err))
	}

	r.logger.Debug("Loaded stop table", slog.String("gtfs_id", gtfsID), slog.Int("stops", len(stops)))

	return stops, nil
}

func (r *HTTPResolver) download(ctx context.Context, gtfsID string) (map[string]entity.Stop, error) {
	endpoint := r.baseURL + "/getBusStops?" + url.Values{"gtfs_id": []string{gtfsID}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request stop table")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("stop table %s: HTTP %d", gtfsID, resp.StatusCode)
	}

	var records []stopRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode stop table")
	}

	stops := make(map[string]entity.Stop, len(records))
	for _, rec := range records {
		id := string(rec.StopID)
		if id == "" {
			continue
		}
		if _, dup := stops[id]; dup {
			// The first entry wins, as in a linear scan.
			continue
		}
		stops[id] = entity.Stop{
			ID:       id,
			Name:     rec.StopName,
			Location: orb.Point{float64(rec.StopLon), float64(rec.StopLat)},
		}
	}

	return stops, nil
}

type stopRecord struct {
	StopID   flexString `json:"stop_id"`
	StopName string     `json:"stop_name"`
	StopLat  flexFloat  `json:"stop_lat"`
	StopLon  flexFloat  `json:"stop_lon"`
}

// flexString accepts a JSON string or number.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return errors.WithStack(err)
		}
		*s = flexString(v)

		return nil
	}
	if string(data) == "null" {
		*s = ""

		return nil
	}
	*s = flexString(data)

	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*f = flexFloat(math.NaN())

		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "parse coordinate %q", raw)
	}
	*f = flexFloat(v)

	return nil
}
