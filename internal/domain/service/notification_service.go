package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a data message to a single device token and returns the message id
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}

// MailSender delivers plain text email.
type MailSender interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// ChatPoster posts a message to a chat channel.
type ChatPoster interface {
	PostMessage(ctx context.Context, text string) error
}
