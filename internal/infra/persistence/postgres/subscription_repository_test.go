package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestSubscriptionMapper_RoundTrip(t *testing.T) {
	t.Parallel()

	var filters entity.FilterSet
	require.NoError(t, json.Unmarshal([]byte(`{
		"stop_id": "S-1",
		"allow_multiple_notifications": true,
		"target_area": [{"type": "Point", "coordinates": [127.9, 26.6], "properties": {"radius": 3000}}]
	}`), &filters))

	notifiedAt := time.Date(2024, 10, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	sub := &entity.Subscription{
		ID:             "sub-1",
		FeedKey:        "yanbaru-expressbus",
		OwnerAddress:   "user@example.com",
		DeliveryTarget: "https://hooks.example.com/notify",
		Filters:        filters,
		Details:        map[string]any{"describe": "Nago"},
		LastNotifiedAt: &notifiedAt,
	}

	subscriptionM, err := fromSubscriptionDomain(sub)
	require.NoError(t, err)
	assert.Equal(t, "yanbaru-expressbus", subscriptionM.FeedKey)
	assert.Equal(t, time.UTC, subscriptionM.LastNotifiedAt.Location())

	got, err := toSubscriptionDomain(subscriptionM)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", got.ID)
	assert.Equal(t, "S-1", got.Filters.StopID)
	assert.True(t, got.Filters.AllowMultipleNotifications)
	require.NotNil(t, got.Filters.TargetArea)
	assert.True(t, got.Filters.TargetArea.IsMulti())
	assert.Equal(t, "Nago", got.Description("fallback"))
	assert.True(t, notifiedAt.Equal(*got.LastNotifiedAt))
}

func TestSubscriptionMapper_MalformedFilters(t *testing.T) {
	t.Parallel()

	_, err := toSubscriptionDomain(&model.SubscriptionModel{
		ID:      "broken",
		Filters: datatypes.JSON(`{"weekday": "Monday"}`),
	})
	assert.Error(t, err)
}

func TestConstraintErrors(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_alert_subscriptions_id" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "id" violates not-null constraint (SQLSTATE 23502)`)))
}
