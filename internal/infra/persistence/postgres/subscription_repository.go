// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB, logger *slog.Logger) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// ScanAll returns every stored subscription, skipping rows that cannot be decoded.
func (repo *subscriptionRepository) ScanAll(ctx context.Context) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Order("feed_key, owner_address").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to scan subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscription, err := toSubscriptionDomain(subscriptionM)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed subscription row",
				slog.String("id", subscriptionM.ID),
				slog.String("feed_key", subscriptionM.FeedKey),
				slog.Any("error", err),
			)

			continue
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

// Put upserts the full record on (feed_key, owner_address).
func (repo *subscriptionRepository) Put(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM, err := fromSubscriptionDomain(subscription)
	if err != nil {
		return errors.Wrap(err, "failed to encode subscription")
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "feed_key"}, {Name: "owner_address"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id",
				"static_feed_endpoint",
				"delivery_target",
				"filters",
				"details",
				"last_notified_at",
				"updated_at",
			}),
		}).
		Create(subscriptionM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriptionID
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSubscriptionSaveFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save subscription")
	}

	return nil
}

// FindByID retrieves a subscription by its id.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id string) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	subscription, err := toSubscriptionDomain(&subscriptionM)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode subscription %s", id)
	}

	return subscription, nil
}

// DeleteByKeys removes the record stored under (feedKey, ownerAddress).
func (repo *subscriptionRepository) DeleteByKeys(ctx context.Context, feedKey, ownerAddress string) error {
	result := repo.db.WithContext(ctx).
		Where("feed_key = ? AND owner_address = ?", feedKey, ownerAddress).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) (*entity.Subscription, error) {
	if data == nil {
		return nil, nil
	}

	subscription := &entity.Subscription{
		ID:                 data.ID,
		FeedKey:            data.FeedKey,
		StaticFeedEndpoint: data.StaticFeedEndpoint,
		OwnerAddress:       data.OwnerAddress,
		DeliveryTarget:     data.DeliveryTarget,
	}

	if len(data.Filters) > 0 {
		if err := json.Unmarshal(data.Filters, &subscription.Filters); err != nil {
			return nil, errors.Wrap(err, "decode filters")
		}
	}
	if len(data.Details) > 0 {
		if err := json.Unmarshal(data.Details, &subscription.Details); err != nil {
			return nil, errors.Wrap(err, "decode details")
		}
	}
	if data.LastNotifiedAt != nil {
		last := data.LastNotifiedAt.UTC()
		subscription.LastNotifiedAt = &last
	}

	return subscription, nil
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) (*model.SubscriptionModel, error) {
	if data == nil {
		return nil, errors.New("nil subscription")
	}

	filters, err := json.Marshal(data.Filters)
	if err != nil {
		return nil, errors.Wrap(err, "encode filters")
	}

	subscriptionM := &model.SubscriptionModel{
		FeedKey:            data.FeedKey,
		OwnerAddress:       data.OwnerAddress,
		ID:                 data.ID,
		StaticFeedEndpoint: data.StaticFeedEndpoint,
		DeliveryTarget:     data.DeliveryTarget,
		Filters:            datatypes.JSON(filters),
		UpdatedAt:          time.Now().UTC(),
	}

	if data.Details != nil {
		details, err := json.Marshal(data.Details)
		if err != nil {
			return nil, errors.Wrap(err, "encode details")
		}
		subscriptionM.Details = datatypes.JSON(details)
	}
	if data.LastNotifiedAt != nil {
		last := data.LastNotifiedAt.UTC()
		subscriptionM.LastNotifiedAt = &last
	}

	return subscriptionM, nil
}
