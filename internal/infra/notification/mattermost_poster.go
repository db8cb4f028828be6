package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/errors"

	"github.com/mattermost/mattermost/server/public/model"
)

// ErrChatNotConfigured is returned when no incoming webhook URL is configured.
var ErrChatNotConfigured = errors.New("mattermost webhook url is not configured")

// mattermostPoster posts to a Mattermost incoming webhook.
type mattermostPoster struct {
	webhookURL string
	username   string
	client     *http.Client
}

// NewMattermostPoster creates a ChatPoster for the given incoming webhook.
func NewMattermostPoster(webhookURL, username string, timeout time.Duration) service.ChatPoster {
	return NewMattermostPosterWithClient(webhookURL, username, &http.Client{Timeout: timeout})
}

// NewMattermostPosterWithClient creates a ChatPoster on the given client.
func NewMattermostPosterWithClient(webhookURL, username string, client *http.Client) service.ChatPoster {
	return &mattermostPoster{
		webhookURL: webhookURL,
		username:   username,
		client:     client,
	}
}

func (p *mattermostPoster) PostMessage(ctx context.Context, text string) error {
	if p.webhookURL == "" {
		return ErrChatNotConfigured
	}

	payload, err := json.Marshal(&model.IncomingWebhookRequest{
		Text:     text,
		Username: p.username,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post to mattermost")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mattermost returned status %d", resp.StatusCode)
	}

	return nil
}
