package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gtfstrigger/internal/delivery/context"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/usecase"
	"gtfstrigger/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	registry         service.FeedRegistry
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
	newID            func() string
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Registry         service.FeedRegistry
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		registry:         params.Registry,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

func (s *subscriptionService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateSubscription validates and stores a new subscription, then publishes its trace
func (s *subscriptionService) CreateSubscription(ctx context.Context, input *usecase.SubscriptionInput) (*entity.Subscription, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	subscription := newSubscription(s.newID(), input)
	if err := s.subscriptionRepo.Put(ctx, subscription); err != nil {
		return nil, s.saveError(err)
	}

	logger := s.getLogger(ctx)
	logger.InfoContext(ctx, "Subscription created",
		slog.String("subscription_id", subscription.ID),
		slog.String("feed_key", subscription.FeedKey),
	)

	trace := &entity.SubscriptionTrace{
		TraceID:      s.newID(),
		Subscription: subscription,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishSubscriptionTrace(ctx, trace); err != nil {
		logger.WarnContext(ctx, "Failed to publish subscription trace",
			slog.String("subscription_id", subscription.ID),
			slog.Any("error", err),
		)
	}

	return subscription, nil
}

// ListByOwner returns every subscription whose owner, without its last "@"
// segment, equals the brace-stripped email.
func (s *subscriptionService) ListByOwner(ctx context.Context, email string) ([]*entity.Subscription, error) {
	query := util.StripBraces(email)
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrMissingOwner
	}

	subscriptions, err := s.subscriptionRepo.ScanAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan subscriptions")
	}

	matched := make([]*entity.Subscription, 0)
	for _, sub := range subscriptions {
		if util.TrimLastAtSegment(util.StripBraces(sub.OwnerAddress)) == query {
			matched = append(matched, sub)
		}
	}

	return matched, nil
}

// UpdateSubscription overwrites the record found by id. When the feed key or
// owner changes, the record under the old keys is removed in the same transaction.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, id string, input *usecase.SubscriptionInput) (*entity.Subscription, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	existing, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := newSubscription(existing.ID, input)

	if existing.FeedKey == updated.FeedKey && existing.OwnerAddress == updated.OwnerAddress {
		if err := s.subscriptionRepo.Put(ctx, updated); err != nil {
			return nil, s.saveError(err)
		}

		return updated, nil
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txRepo := txRepoFactory.NewSubscriptionRepository()
		if err := txRepo.DeleteByKeys(ctx, existing.FeedKey, existing.OwnerAddress); err != nil {
			return errors.Wrap(err, "failed to delete subscription under previous keys")
		}

		return txRepo.Put(ctx, updated)
	})
	if err != nil {
		return nil, s.saveError(err)
	}

	s.getLogger(ctx).InfoContext(ctx, "Subscription moved to new keys",
		slog.String("subscription_id", updated.ID),
		slog.String("feed_key", updated.FeedKey),
	)

	return updated, nil
}

// DeleteSubscription removes the record found by id
func (s *subscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepo.DeleteByKeys(ctx, existing.FeedKey, existing.OwnerAddress); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// DeleteByOwnerLink removes the first record whose brace-stripped owner equals
// the brace-stripped userEmail.
func (s *subscriptionService) DeleteByOwnerLink(ctx context.Context, userEmail string) error {
	owner := util.StripBraces(userEmail)
	if strings.TrimSpace(owner) == "" {
		return domainerrors.ErrMissingOwner
	}

	subscriptions, err := s.subscriptionRepo.ScanAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to scan subscriptions")
	}

	for _, sub := range subscriptions {
		if util.StripBraces(sub.OwnerAddress) != owner {
			continue
		}
		if err := s.subscriptionRepo.DeleteByKeys(ctx, sub.FeedKey, sub.OwnerAddress); err != nil {
			return errors.Wrap(err, "failed to delete subscription")
		}
		s.getLogger(ctx).InfoContext(ctx, "Subscription removed by owner link",
			slog.String("subscription_id", sub.ID),
			slog.String("owner", util.Mask(owner, 4)),
		)

		return nil
	}

	return domainerrors.ErrSubscriptionNotFound
}

func (s *subscriptionService) findByID(ctx context.Context, id string) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return subscription, nil
}

func (s *subscriptionService) validate(input *usecase.SubscriptionInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}
	if def, ok := s.registry.Lookup(input.FeedKey); !ok || def.ReadOnly {
		return domainerrors.ErrInvalidFeedKey.WithDetails(input.FeedKey)
	}
	if strings.TrimSpace(input.OwnerAddress) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userEmail is required")
	}
	if strings.TrimSpace(input.DeliveryTarget) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("webhook_url is required")
	}

	if err := input.Filters.Validate(); err != nil {
		if errors.Is(err, entity.ErrInvalidTargetArea) {
			return domainerrors.ErrInvalidTargetArea.WithDetails(err.Error())
		}

		return domainerrors.ErrInvalidFilter.WithDetails(err.Error())
	}

	return nil
}

func (s *subscriptionService) saveError(err error) error {
	if errors.Is(err, repository.ErrDuplicateSubscriptionID) {
		return domainerrors.ErrConflict.WithDetails(err.Error())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrSubscriptionSaveFailed.WrapMessage(err.Error())
}

// newSubscription builds the stored record. LastNotifiedAt always starts empty.
func newSubscription(id string, input *usecase.SubscriptionInput) *entity.Subscription {
	return &entity.Subscription{
		ID:                 id,
		FeedKey:            input.FeedKey,
		StaticFeedEndpoint: input.StaticFeedEndpoint,
		OwnerAddress:       input.OwnerAddress,
		DeliveryTarget:     input.DeliveryTarget,
		Filters:            input.Filters,
		Details:            input.Details,
	}
}
