// Package pubsub publishes dispatch and subscription trace events.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/constants"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDispatch(ctx context.Context, record *entity.DispatchRecord) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", service.EventTypeDispatch),
		slog.String("subscription_id", record.SubscriptionID),
	)

	return nil
}

func (p *noopPublisher) PublishSubscriptionTrace(ctx context.Context, trace *entity.SubscriptionTrace) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", service.EventTypeSubscriptionTrace),
		slog.String("trace_id", trace.TraceID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventMessage is the serialized form shared by every publisher.
type eventMessage struct {
	data       []byte
	attributes map[string]string
	messageID  string
}

func dispatchMessage(record *entity.DispatchRecord) (*eventMessage, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type":      service.EventTypeDispatch,
		"subscription_id": record.SubscriptionID,
		"feed_key":        record.FeedKey,
		"delivered":       strconv.FormatBool(record.Delivered),
	}
	if record.RequestID != "" {
		attributes["request_id"] = record.RequestID
	}

	return &eventMessage{data: data, attributes: attributes, messageID: uuid.NewString()}, nil
}

func traceMessage(trace *entity.SubscriptionTrace) (*eventMessage, error) {
	data, err := json.Marshal(trace)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": service.EventTypeSubscriptionTrace,
		"trace_id":   trace.TraceID,
	}
	if trace.Subscription != nil {
		attributes["subscription_id"] = trace.Subscription.ID
		attributes["feed_key"] = trace.Subscription.FeedKey
	}

	return &eventMessage{data: data, attributes: attributes, messageID: trace.TraceID}, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
