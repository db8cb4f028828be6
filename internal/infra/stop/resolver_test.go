package stop

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/infra/feed"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stopsJSON = `[
	{"stop_id":"stop-9","stop_name":"Yokohama Station","stop_lat":"35.4660","stop_lon":"139.6222"},
	{"stop_id":1024,"stop_name":"Sakuragicho","stop_lat":35.4509,"stop_lon":139.6313},
	{"stop_id":"stop-9","stop_name":"Duplicate","stop_lat":0,"stop_lon":0}
]`

func newTestResolver(t *testing.T, handler http.HandlerFunc) *HTTPResolver {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	registry, err := feed.NewRegistryFromEntries("https://feeds.example.com", []config.FeedEntry{
		{Key: "data", Path: "/vehicles", StopsGTFSID: "data"},
		{Key: "odpt_tobu", Path: "/tobu"},
	})
	require.NoError(t, err)

	return NewHTTPResolverWithClient(server.Client(), server.URL+"/", registry, 8, time.Minute,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHTTPResolver_ResolveStop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/getBusStops", r.URL.Path)
		assert.Equal(t, "data", r.URL.Query().Get("gtfs_id"))
		_, _ = io.WriteString(w, stopsJSON)
	})
	ctx := context.Background()

	stop, err := resolver.ResolveStop(ctx, "stop-9", "data")
	require.NoError(t, err)
	assert.Equal(t, "Yokohama Station", stop.Name)
	assert.Equal(t, orb.Point{139.6222, 35.4660}, stop.Location)

	stop, err = resolver.ResolveStop(ctx, "1024", "data")
	require.NoError(t, err)
	assert.Equal(t, "Sakuragicho", stop.Name)

	_, err = resolver.ResolveStop(ctx, "missing", "data")
	assert.True(t, errors.Is(err, service.ErrStopNotFound))

	assert.Equal(t, int32(1), calls.Load(), "stop table is cached per gtfs_id")
}

func TestHTTPResolver_FeedWithoutStopTable(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("lookup API must not be called")
	})

	_, err := resolver.ResolveStop(context.Background(), "stop-9", "odpt_tobu")
	assert.True(t, errors.Is(err, service.ErrStopNotFound))

	_, err = resolver.ResolveStop(context.Background(), "stop-9", "unknown")
	assert.True(t, errors.Is(err, service.ErrStopNotFound))
}

func TestHTTPResolver_UpstreamFailureIsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	resolver := newTestResolver(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = io.WriteString(w, stopsJSON)
	})
	ctx := context.Background()

	_, err := resolver.ResolveStop(ctx, "stop-9", "data")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrStopNotFound))

	stop, err := resolver.ResolveStop(ctx, "stop-9", "data")
	require.NoError(t, err)
	assert.Equal(t, "Yokohama Station", stop.Name)
}
