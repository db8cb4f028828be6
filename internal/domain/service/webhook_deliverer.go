package service

import (
	"context"

	"gtfstrigger/internal/domain/entity"
)

// WebhookDeliverer posts a NotificationEvent to a subscription's delivery target.
type WebhookDeliverer interface {
	// Deliver returns an error for transport failures and non-2xx responses.
	Deliver(ctx context.Context, targetURL string, event *entity.NotificationEvent) error
}
