package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery"
	"gtfstrigger/internal/delivery/notifier"
	"gtfstrigger/internal/delivery/notifier/handler"
	"gtfstrigger/internal/domain/service"
	logs "gtfstrigger/internal/infra/log"
	"gtfstrigger/internal/infra/notification"
	"gtfstrigger/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newMailSender,
			newFirebaseService,
			newChatPoster,
		),
	)
}

func newMailSender(cfg *config.Config) service.MailSender {
	return notification.NewSMTPMailer(cfg.Notifier.SMTP, cfg.Notifier.Timeout)
}

// newFirebaseService creates the push sender, nil when no credentials are configured
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func newChatPoster(cfg *config.Config) service.ChatPoster {
	return notification.NewMattermostPoster(
		cfg.Notifier.MattermostWebhookURL,
		cfg.Notifier.MattermostUsername,
		cfg.Notifier.Timeout,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRelayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRelayHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				notifier.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
