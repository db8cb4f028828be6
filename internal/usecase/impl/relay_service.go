package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"gtfstrigger/config"
	deliverycontext "gtfstrigger/internal/delivery/context"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/usecase"
	"gtfstrigger/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const unsubscribeNotice = "To stop receiving these notification emails, open the following URL."

type relayService struct {
	mailer service.MailSender
	push   service.NotificationService
	chat   service.ChatPoster
	cfg    *config.NotifierConfig
	logger *slog.Logger
}

// RelayServiceParams holds dependencies for RelayService, injected by Fx.
type RelayServiceParams struct {
	fx.In

	Mailer service.MailSender
	Push   service.NotificationService // nil when no Firebase credentials are configured
	Chat   service.ChatPoster
	Config *config.Config
	Logger *slog.Logger
}

// NewRelayService creates a new relay service instance
func NewRelayService(params RelayServiceParams) usecase.RelayUsecase {
	cfg := params.Config.Notifier
	if cfg == nil {
		cfg = &config.NotifierConfig{}
	}

	return &relayService{
		mailer: params.Mailer,
		push:   params.Push,
		chat:   params.Chat,
		cfg:    cfg,
		logger: params.Logger,
	}
}

func (s *relayService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Relay sends the event to the person behind the subscription. Email wins over
// push when both are present. The chat post is best effort.
func (s *relayService) Relay(ctx context.Context, req *usecase.RelayRequest) (*usecase.RelayResult, error) {
	if req == nil || req.Event == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	logger := s.getLogger(ctx)
	sub := req.Event.AlarmSettings

	label := sub.Label(s.cfg.DefaultLabel)
	description := sub.Description(s.cfg.DefaultDescription)
	owner := ""
	if sub != nil {
		owner = sub.OwnerAddress
	}
	text := s.messageBody(description, owner)

	result := &usecase.RelayResult{Subject: label, Channels: []string{}}

	switch {
	case len(req.Email) > 0:
		to, err := normalizeAddress(req.Email[0])
		if err != nil {
			return nil, err
		}
		if err := s.mailer.SendMail(ctx, to, label, text); err != nil {
			return nil, domainerrors.ErrNotificationFailed.WrapMessage(errors.Wrap(err, "email").Error())
		}
		logger.InfoContext(ctx, "Notification email sent", slog.String("to", util.Mask(to, 4)))
		result.Channels = append(result.Channels, usecase.ChannelEmail)
	case len(req.FCM) > 0:
		if s.push == nil {
			return nil, domainerrors.ErrNotificationFailed.WithDetails("push notifications are not configured")
		}
		token := util.StripBraces(req.FCM[0])
		messageID, err := s.push.SendSingleNotification(ctx, token, label, description, nil)
		if err != nil {
			return nil, domainerrors.ErrNotificationFailed.WrapMessage(errors.Wrap(err, "push").Error())
		}
		logger.InfoContext(ctx, "Push notification sent",
			slog.String("token", util.Mask(token, 8)),
			slog.String("message_id", messageID),
		)
		result.Channels = append(result.Channels, usecase.ChannelPush)
	}

	if err := s.chat.PostMessage(ctx, text); err != nil {
		logger.WarnContext(ctx, "Failed to post notification to chat", slog.Any("error", err))
	} else {
		result.Channels = append(result.Channels, usecase.ChannelMattermost)
	}

	return result, nil
}

func (s *relayService) messageBody(description, owner string) string {
	var b strings.Builder
	b.WriteString(description)
	b.WriteString("\n\n")
	b.WriteString(unsubscribeNotice)
	b.WriteString("\n")
	b.WriteString(s.cfg.UnsubscribeURL)
	b.WriteString("?userEmail=")
	b.WriteString(url.QueryEscape(owner))

	return b.String()
}

// normalizeAddress keeps the first two "@" segments of the address, so that
// "taro@example.com@tag" becomes "taro@example.com".
func normalizeAddress(address string) (string, error) {
	parts := strings.Split(address, "@")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("email must look like local@domain")
	}

	return parts[0] + "@" + parts[1], nil
}
