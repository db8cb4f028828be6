package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage represents the structure of a Pub/Sub push message.
// It mimics the format Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return newLocalHTTPPublisher(endpoint, &http.Client{Timeout: 30 * time.Second}, logger)
}

func newLocalHTTPPublisher(endpoint string, client *http.Client, logger *slog.Logger) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: client,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishDispatch(ctx context.Context, record *entity.DispatchRecord) error {
	msg, err := dispatchMessage(record)
	if err != nil {
		return err
	}

	return p.push(ctx, msg, record.RequestID)
}

func (p *localHTTPPublisher) PublishSubscriptionTrace(ctx context.Context, trace *entity.SubscriptionTrace) error {
	msg, err := traceMessage(trace)
	if err != nil {
		return err
	}

	return p.push(ctx, msg, "")
}

func (p *localHTTPPublisher) push(ctx context.Context, msg *eventMessage, requestID string) error {
	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/gtfstrigger-events",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.MessageID = msg.messageID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = msg.attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", msg.attributes["event_type"]),
		slog.String("message_id", msg.messageID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
