package service

import (
	"context"

	"gtfstrigger/internal/domain/entity"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeDispatch          = "dispatch"
	EventTypeSubscriptionTrace = "subscription_trace"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatch publishes the outcome of one webhook delivery attempt
	PublishDispatch(ctx context.Context, record *entity.DispatchRecord) error

	// PublishSubscriptionTrace publishes the audit copy of a newly created subscription
	PublishSubscriptionTrace(ctx context.Context, trace *entity.SubscriptionTrace) error

	// Close releases any resources held by the publisher
	Close() error
}
