package memstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (repository.SubscriptionRepository, *subscriptionRepository) {
	t.Helper()

	coll, err := OpenCollection("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = coll.Close() })

	repo := NewSubscriptionRepository(coll, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return repo, repo.(*subscriptionRepository)
}

func sampleSubscription(t *testing.T, id, feedKey, owner string) *entity.Subscription {
	t.Helper()

	var filters entity.FilterSet
	require.NoError(t, json.Unmarshal([]byte(`{
		"trip_id": "trip123",
		"weekday": ["Monday"],
		"target_area": {"type": "Point", "coordinates": [139.7, 35.6], "properties": {"radius": 500}}
	}`), &filters))

	return &entity.Subscription{
		ID:                 id,
		FeedKey:            feedKey,
		StaticFeedEndpoint: "https://static.example.com/gtfs.zip",
		OwnerAddress:       owner,
		DeliveryTarget:     "https://hooks.example.com/notify?email=a@example.com",
		Filters:            filters,
		Details:            map[string]any{"label": "Home"},
	}
}

func TestSubscriptionRepository_PutAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepository(t)

	sub := sampleSubscription(t, "sub-1", "data", "user@example.com")
	require.NoError(t, repo.Put(ctx, sub))

	got, err := repo.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "data", got.FeedKey)
	assert.Equal(t, "user@example.com", got.OwnerAddress)
	assert.Equal(t, sub.DeliveryTarget, got.DeliveryTarget)
	assert.Equal(t, "trip123", got.Filters.TripID)
	assert.Equal(t, []string{"Monday"}, got.Filters.Weekday)
	require.NotNil(t, got.Filters.TargetArea)
	require.Len(t, got.Filters.TargetArea.Points(), 1)
	assert.InDelta(t, 500.0, got.Filters.TargetArea.Points()[0].Radius, 1e-9)
	assert.Equal(t, "Home", got.Label("fallback"))
	assert.Nil(t, got.LastNotifiedAt)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}

func TestSubscriptionRepository_PutOverwritesSameKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepository(t)

	sub := sampleSubscription(t, "sub-1", "data", "user@example.com")
	require.NoError(t, repo.Put(ctx, sub))

	notifiedAt := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	updated := sampleSubscription(t, "sub-1", "data", "user@example.com")
	updated.LastNotifiedAt = &notifiedAt
	require.NoError(t, repo.Put(ctx, updated))

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].LastNotifiedAt)
	assert.True(t, notifiedAt.Equal(*all[0].LastNotifiedAt))
}

func TestSubscriptionRepository_PutRejectsIDOwnedByOtherKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Put(ctx, sampleSubscription(t, "sub-1", "data", "a@example.com")))

	err := repo.Put(ctx, sampleSubscription(t, "sub-1", "data", "b@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateSubscriptionID)
}

func TestSubscriptionRepository_DeleteByKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Put(ctx, sampleSubscription(t, "sub-1", "data", "a@example.com")))
	require.NoError(t, repo.Put(ctx, sampleSubscription(t, "sub-2", "odpt_tobu", "a@example.com")))

	require.NoError(t, repo.DeleteByKeys(ctx, "data", "a@example.com"))
	require.NoError(t, repo.DeleteByKeys(ctx, "data", "a@example.com"), "deleting twice is not an error")

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sub-2", all[0].ID)
}

func TestSubscriptionRepository_ScanAllSkipsMalformedDocuments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, impl := newTestRepository(t)

	require.NoError(t, repo.Put(ctx, sampleSubscription(t, "sub-1", "data", "a@example.com")))
	require.NoError(t, impl.coll.Put(ctx, &subscriptionDocument{
		Key:          documentKey("data", "broken@example.com"),
		ID:           "broken",
		FeedKey:      "data",
		OwnerAddress: "broken@example.com",
		Filters:      "{not json",
	}))

	all, err := repo.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sub-1", all[0].ID)
}

func TestTransactionManager_ExecuteUsesSharedRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepository(t)
	tm := NewTransactionManager(repo)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewSubscriptionRepository()
		if err := txRepo.DeleteByKeys(ctx, "data", "a@example.com"); err != nil {
			return err
		}

		return txRepo.Put(ctx, sampleSubscription(t, "sub-1", "data", "b@example.com"))
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.OwnerAddress)
}
