package main

import (
	"context"
	"log/slog"
	"os"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery"
	"gtfstrigger/internal/delivery/worker"
	"gtfstrigger/internal/delivery/worker/handler"
	"gtfstrigger/internal/infra/feed"
	logs "gtfstrigger/internal/infra/log"
	"gtfstrigger/internal/infra/persistence"
	"gtfstrigger/internal/infra/pubsub"
	"gtfstrigger/internal/infra/stop"
	"gtfstrigger/internal/infra/webhook"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			feed.NewRegistry,
			feed.NewGTFSRTFetcher,
			stop.NewHTTPResolver,
			webhook.NewDeliverer,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPassRunner,
			handler.NewTriggerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
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
