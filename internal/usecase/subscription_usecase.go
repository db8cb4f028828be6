package usecase

import (
	"context"

	"gtfstrigger/internal/domain/entity"
)

// SubscriptionInput carries the writable fields of a subscription
type SubscriptionInput struct {
	FeedKey            string
	StaticFeedEndpoint string
	OwnerAddress       string
	DeliveryTarget     string
	Filters            entity.FilterSet
	Details            map[string]any
}

// SubscriptionUsecase defines the interface for subscription management use cases
type SubscriptionUsecase interface {
	// CreateSubscription validates and stores a new subscription with a generated id
	CreateSubscription(ctx context.Context, input *SubscriptionInput) (*entity.Subscription, error)

	// ListByOwner returns the subscriptions whose owner, with its last "@" segment
	// removed, equals email. Braces are stripped from both sides.
	ListByOwner(ctx context.Context, email string) ([]*entity.Subscription, error)

	// UpdateSubscription overwrites the subscription found by id, keeping the id
	UpdateSubscription(ctx context.Context, id string, input *SubscriptionInput) (*entity.Subscription, error)

	// DeleteSubscription removes the subscription found by id
	DeleteSubscription(ctx context.Context, id string) error

	// DeleteByOwnerLink removes the first subscription whose owner equals
	// userEmail literally after stripping braces. Used by unsubscribe links.
	DeleteByOwnerLink(ctx context.Context, userEmail string) error
}
