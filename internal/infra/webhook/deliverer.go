// Package webhook posts notification events to subscriber webhooks.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "gtfstrigger"

	// maxErrorBodyBytes bounds how much of a failed response is kept in the error
	maxErrorBodyBytes = 512
)

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "webhook returned status " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

// httpDeliverer implements service.WebhookDeliverer with a JSON POST.
type httpDeliverer struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

// DelivererParams holds dependencies for the webhook deliverer, injected by Fx
type DelivererParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDeliverer creates the webhook deliverer from configuration.
func NewDeliverer(params DelivererParams) service.WebhookDeliverer {
	timeout := defaultTimeout
	userAgent := defaultUserAgent
	if cfg := params.Config.Webhook; cfg != nil {
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
	}

	return NewDelivererWithClient(&http.Client{}, timeout, userAgent, params.Logger)
}

// NewDelivererWithClient creates a deliverer on the given client.
func NewDelivererWithClient(client *http.Client, timeout time.Duration, userAgent string, logger *slog.Logger) service.WebhookDeliverer {
	return &httpDeliverer{
		client:    client,
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Deliver posts the event. Query parameters of targetURL are moved into the body.
func (d *httpDeliverer) Deliver(ctx context.Context, targetURL string, event *entity.NotificationEvent) error {
	endpoint, body, err := BuildRequestBody(targetURL, event)
	if err != nil {
		return err
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return errors.WithStack(&StatusError{StatusCode: resp.StatusCode, Body: string(snippet)})
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	d.logger.DebugContext(ctx, "Webhook delivered",
		slog.String("endpoint", endpoint),
		slog.String("vehicle_id", event.VehicleID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

// BuildRequestBody returns the URL to post to and the JSON body for event.
// Each query parameter of targetURL becomes a top-level body field (a string
// for one value, a list for repeated keys, overriding event fields of the same
// name) and the query is removed from the returned URL. Blank values are dropped.
func BuildRequestBody(targetURL string, event *entity.NotificationEvent) (string, []byte, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return "", nil, errors.Wrap(err, "invalid webhook url")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", nil, errors.Errorf("invalid webhook url scheme %q", parsed.Scheme)
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to encode event")
	}

	query, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return "", nil, errors.Wrap(err, "invalid webhook query")
	}
	if len(query) == 0 {
		return parsed.String(), encoded, nil
	}

	payload := map[string]any{}
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return "", nil, errors.Wrap(err, "failed to decode event")
	}
	for key, values := range query {
		nonBlank := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				nonBlank = append(nonBlank, v)
			}
		}

		switch len(nonBlank) {
		case 0:
		case 1:
			payload[key] = nonBlank[0]
		default:
			payload[key] = nonBlank
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to encode webhook body")
	}

	parsed.RawQuery = ""
	parsed.ForceQuery = false

	return parsed.String(), body, nil
}
