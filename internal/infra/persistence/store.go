// Package persistence selects the subscription store backend.
package persistence

import (
	"context"
	"log/slog"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/constants"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/errors"
	"gtfstrigger/internal/infra/persistence/memstore"
	"gtfstrigger/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the subscription store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// StoreResult exposes the store's repository and transaction manager to Fx
type StoreResult struct {
	fx.Out

	Subscriptions repository.SubscriptionRepository
	Transactions  repository.TransactionManager
}

// NewStore creates the subscription store named by store.provider.
func NewStore(params StoreParams) (StoreResult, error) {
	cfg := params.Config.Store
	logger := params.Logger

	provider := constants.StoreProviderPostgres
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.StoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return StoreResult{}, err
		}
		logger.Info("Using PostgreSQL subscription store")

		return StoreResult{
			Subscriptions: postgres.NewSubscriptionRepository(db, logger),
			Transactions:  postgres.NewTransactionManager(db, logger),
		}, nil

	case constants.StoreProviderMemory:
		var filename string
		if cfg != nil {
			filename = cfg.Filename
		}

		coll, err := memstore.OpenCollection(filename)
		if err != nil {
			return StoreResult{}, err
		}
		logger.Warn("Using in-memory subscription store, subscriptions are not shared with other processes",
			slog.String("filename", filename),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.Wrap(coll.Close(), "failed to close memory collection")
			},
		})

		repo := memstore.NewSubscriptionRepository(coll, logger)

		return StoreResult{
			Subscriptions: repo,
			Transactions:  memstore.NewTransactionManager(repo),
		}, nil

	default:
		return StoreResult{}, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the subscription store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
