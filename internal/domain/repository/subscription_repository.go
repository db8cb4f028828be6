// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscriptionID is returned when another record already owns the id.
	ErrDuplicateSubscriptionID = errors.New("subscription id already in use")
)

// SubscriptionRepository is the keyed subscription table. Records are keyed by
// (FeedKey, OwnerAddress) and can also be looked up by ID.
type SubscriptionRepository interface {
	// ScanAll returns every stored subscription. Records that cannot be decoded
	// are logged and left out instead of failing the scan.
	ScanAll(ctx context.Context) ([]*entity.Subscription, error)

	// Put writes the full record, replacing any record with the same
	// (FeedKey, OwnerAddress).
	Put(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its secondary id key.
	FindByID(ctx context.Context, id string) (*entity.Subscription, error)

	// DeleteByKeys removes the record stored under (feedKey, ownerAddress).
	// Deleting a missing record is not an error.
	DeleteByKeys(ctx context.Context, feedKey, ownerAddress string) error
}
