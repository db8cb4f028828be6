package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/infra/persistence/memstore"
	mockRepo "gtfstrigger/internal/mocks/repository"
	mockSvc "gtfstrigger/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var passNow = time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type matchingDeps struct {
	repo      repository.SubscriptionRepository
	registry  *mockSvc.MockFeedRegistry
	fetcher   *mockSvc.MockFeedFetcher
	deliverer *mockSvc.MockWebhookDeliverer
	publisher *mockSvc.MockEventPublisher
	stops     *mockSvc.MockStopResolver
}

func newMatchingDeps(t *testing.T, repo repository.SubscriptionRepository) *matchingDeps {
	t.Helper()

	return &matchingDeps{
		repo:      repo,
		registry:  mockSvc.NewMockFeedRegistry(t),
		fetcher:   mockSvc.NewMockFeedFetcher(t),
		deliverer: mockSvc.NewMockWebhookDeliverer(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		stops:     mockSvc.NewMockStopResolver(t),
	}
}

func (d *matchingDeps) build(now time.Time) *matchingService {
	svc := NewMatchingService(MatchingServiceParams{
		SubscriptionRepo: d.repo,
		Registry:         d.registry,
		Fetcher:          d.fetcher,
		Deliverer:        d.deliverer,
		Publisher:        d.publisher,
		StopResolver:     d.stops,
		Config: &config.Config{
			Matcher: &config.MatcherConfig{Cooldown: time.Hour, Concurrency: 2},
		},
		Logger: discardLogger(),
	}).(*matchingService)
	svc.now = func() time.Time { return now }

	return svc
}

func (d *matchingDeps) knownFeeds(keys ...string) {
	for _, key := range keys {
		d.registry.EXPECT().Lookup(key).Return(entity.FeedDefinition{Key: key, URL: "https://feeds.example.com/" + key}, true)
	}
}

func snapshotOf(feedKey string, vehicles ...entity.VehicleSnapshot) *entity.FeedSnapshot {
	return entity.NewFeedSnapshot(feedKey, passNow, slices.Values(vehicles))
}

func bus(id, trip string) entity.VehicleSnapshot {
	return entity.VehicleSnapshot{VehicleID: id, TripID: trip, Position: orb.Point{139.62, 35.45}}
}

func subscriptionFor(id, feedKey, trip string) *entity.Subscription {
	return &entity.Subscription{
		ID:             id,
		FeedKey:        feedKey,
		OwnerAddress:   id + "@example.com",
		DeliveryTarget: "https://hooks.example.com/" + id,
		Filters:        entity.FilterSet{TripID: trip},
	}
}

func TestMatchingService_RunPass_DeliversAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	sub := subscriptionFor("sub-1", "data", "trip-A")

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").
		Return(snapshotOf("data", bus("bus-1", "trip-A"), bus("bus-2", "trip-B")), nil)
	deps.deliverer.EXPECT().
		Deliver(mock.Anything, "https://hooks.example.com/sub-1", mock.MatchedBy(func(e *entity.NotificationEvent) bool {
			return e.VehicleID == "bus-1" && e.AlarmSettings.ID == "sub-1" && e.Timestamp.Equal(passNow)
		})).
		Return(nil).Once()
	repo.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.ID == "sub-1" && s.LastNotifiedAt != nil && s.LastNotifiedAt.Equal(passNow)
		})).
		Return(nil).Once()
	deps.publisher.EXPECT().
		PublishDispatch(mock.Anything, mock.MatchedBy(func(r *entity.DispatchRecord) bool {
			return r.SubscriptionID == "sub-1" && r.Delivered && r.Error == ""
		})).
		Return(nil).Once()

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Subscriptions)
	assert.Equal(t, 1, report.Groups)
	assert.Equal(t, 2, report.Vehicles)
	assert.Equal(t, 1, report.Matches)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.DeliveryFailures)
}

func TestMatchingService_RunPass_DispatchRecordKeepsDeliveredSubscription(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	previous := passNow.Add(-2 * time.Hour)
	sub := subscriptionFor("sub-1", "data", "trip-A")
	sub.LastNotifiedAt = &previous

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").Return(snapshotOf("data", bus("bus-1", "trip-A")), nil)
	deps.deliverer.EXPECT().Deliver(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().Put(mock.Anything, mock.Anything).Return(nil).Once()

	var record *entity.DispatchRecord
	deps.publisher.EXPECT().PublishDispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *entity.DispatchRecord) error {
			record = r

			return nil
		}).Once()

	_, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)

	require.NotNil(t, record)
	require.NotNil(t, record.Event.AlarmSettings.LastNotifiedAt)
	assert.True(t, record.Event.AlarmSettings.LastNotifiedAt.Equal(previous))
	require.NotNil(t, sub.LastNotifiedAt)
	assert.True(t, sub.LastNotifiedAt.Equal(passNow))
}

func TestMatchingService_RunPass_FetchFailureProducesNoDeliveries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	broken := subscriptionFor("sub-1", "odpt_jreast", "")
	healthy := subscriptionFor("sub-2", "data", "trip-A")

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{broken, healthy}, nil)
	deps.knownFeeds("odpt_jreast", "data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "odpt_jreast").Return(nil, errors.New("connection reset"))
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").Return(snapshotOf("data", bus("bus-1", "trip-A")), nil)
	deps.deliverer.EXPECT().Deliver(mock.Anything, healthy.DeliveryTarget, mock.Anything).Return(nil).Once()
	repo.EXPECT().Put(mock.Anything, healthy).Return(nil).Once()
	deps.publisher.EXPECT().PublishDispatch(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Groups)
	assert.Equal(t, 1, report.FailedFeeds)
	assert.Equal(t, 1, report.Delivered)
	assert.Nil(t, broken.LastNotifiedAt)
}

func TestMatchingService_RunPass_CooldownSuppresses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)

	recent := passNow.Add(-30 * time.Minute)
	sub := subscriptionFor("sub-1", "data", "")
	sub.LastNotifiedAt = &recent

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").Return(snapshotOf("data", bus("bus-1", "trip-A")), nil)

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Matches)
	assert.Equal(t, 1, report.Suppressed)
	assert.Equal(t, 0, report.Delivered)
}

func TestMatchingService_RunPass_OneNotificationPerPassWithoutAllowMultiple(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	sub := subscriptionFor("sub-1", "data", "")

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").
		Return(snapshotOf("data", bus("bus-1", "trip-A"), bus("bus-2", "trip-A"), bus("bus-3", "trip-A")), nil)
	deps.deliverer.EXPECT().Deliver(mock.Anything, sub.DeliveryTarget, mock.Anything).Return(nil).Once()
	repo.EXPECT().Put(mock.Anything, sub).Return(nil).Once()
	deps.publisher.EXPECT().PublishDispatch(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Matches)
	assert.Equal(t, 2, report.Suppressed)
	assert.Equal(t, 1, report.Delivered)
}

func TestMatchingService_RunPass_AllowMultipleNotifiesEveryVehicle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	sub := subscriptionFor("sub-1", "data", "")
	sub.Filters.AllowMultipleNotifications = true

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").
		Return(snapshotOf("data", bus("bus-1", "trip-A"), bus("bus-2", "trip-A")), nil)
	deps.deliverer.EXPECT().Deliver(mock.Anything, sub.DeliveryTarget, mock.Anything).Return(nil).Times(2)
	repo.EXPECT().Put(mock.Anything, sub).Return(nil).Times(2)
	deps.publisher.EXPECT().PublishDispatch(mock.Anything, mock.Anything).Return(nil).Times(2)

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Suppressed)
}

func TestMatchingService_RunPass_DeliveryFailureStillRecordsTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)
	sub := subscriptionFor("sub-1", "data", "")

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{sub}, nil)
	deps.knownFeeds("data")
	deps.fetcher.EXPECT().Fetch(mock.Anything, "data").Return(snapshotOf("data", bus("bus-1", "trip-A")), nil)
	deps.deliverer.EXPECT().Deliver(mock.Anything, sub.DeliveryTarget, mock.Anything).
		Return(errors.New("webhook returned status 500")).Once()
	repo.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.LastNotifiedAt != nil && s.LastNotifiedAt.Equal(passNow)
		})).
		Return(errors.New("store unavailable")).Once()
	deps.publisher.EXPECT().
		PublishDispatch(mock.Anything, mock.MatchedBy(func(r *entity.DispatchRecord) bool {
			return !r.Delivered && r.Error != ""
		})).
		Return(nil).Once()

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Delivered)
	assert.Equal(t, 1, report.DeliveryFailures)
	assert.Equal(t, 1, report.PersistFailures)
}

func TestMatchingService_RunPass_SkipsMalformedSubscriptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)

	noFeed := subscriptionFor("sub-1", "", "")
	unknownFeed := subscriptionFor("sub-2", "odpt_unknown", "")
	noTarget := subscriptionFor("sub-3", "data", "")
	noTarget.DeliveryTarget = ""

	repo.EXPECT().ScanAll(ctx).Return([]*entity.Subscription{noFeed, nil, unknownFeed, noTarget}, nil)
	deps.registry.EXPECT().Lookup("odpt_unknown").Return(entity.FeedDefinition{}, false)
	deps.knownFeeds("data")

	report, err := deps.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, report.SkippedSubscriptions)
	assert.Equal(t, 0, report.Groups)
}

func TestMatchingService_RunPass_StoreScanFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := mockRepo.NewMockSubscriptionRepository(t)
	deps := newMatchingDeps(t, repo)

	repo.EXPECT().ScanAll(ctx).Return(nil, errors.New("store unavailable"))

	report, err := deps.build(passNow).RunPass(ctx)
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestMatchingService_RunPass_SkipsWhilePassIsRunning(t *testing.T) {
	t.Parallel()

	repo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newMatchingDeps(t, repo).build(passNow)

	svc.running.Lock()
	defer svc.running.Unlock()

	_, err := svc.RunPass(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrPassInProgress)
}

// Two processes sharing a store can both read a subscription before either
// records its notification time. Both then deliver: the later write wins and
// the cooldown does not hold across them.
func TestMatchingService_OverlappingPassesAcrossProcessesDeliverTwice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	coll, err := memstore.OpenCollection("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = coll.Close() })
	store := memstore.NewSubscriptionRepository(coll, discardLogger())
	require.NoError(t, store.Put(ctx, subscriptionFor("sub-1", "data", "")))

	first := newMatchingDeps(t, store)
	second := newMatchingDeps(t, store)
	for _, deps := range []*matchingDeps{first, second} {
		deps.knownFeeds("data")
		deps.deliverer.EXPECT().Deliver(mock.Anything, "https://hooks.example.com/sub-1", mock.Anything).Return(nil).Once()
		deps.publisher.EXPECT().PublishDispatch(mock.Anything, mock.Anything).Return(nil).Once()
	}

	secondPass := second.build(passNow.Add(time.Second))
	second.fetcher.EXPECT().Fetch(mock.Anything, "data").Return(snapshotOf("data", bus("bus-1", "trip-A")), nil)

	// The first process has loaded its subscriptions and is fetching when the
	// second process runs a complete pass.
	first.fetcher.EXPECT().Fetch(mock.Anything, "data").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.FeedSnapshot, error) {
			report, err := secondPass.RunPass(ctx)
			if assert.NoError(t, err) {
				assert.Equal(t, 1, report.Delivered)
			}

			return snapshotOf("data", bus("bus-1", "trip-A")), nil
		})

	report, err := first.build(passNow).RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered, "stale read does not see the other process's timestamp")

	stored, err := store.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, stored.LastNotifiedAt)
	assert.True(t, stored.LastNotifiedAt.Equal(passNow), "last writer wins")
}
