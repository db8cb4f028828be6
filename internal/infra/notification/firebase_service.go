package notification

import (
	"context"
	"fmt"
	"maps"

	"gtfstrigger/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a data message to a single device token.
// Title and body travel in the data payload so the client app renders them.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Data:  dataPayload(title, body, data),
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}

func dataPayload(title, body string, extra map[string]string) map[string]string {
	payload := make(map[string]string, len(extra)+2)
	maps.Copy(payload, extra)
	payload["title"] = title
	payload["body"] = body

	return payload
}
