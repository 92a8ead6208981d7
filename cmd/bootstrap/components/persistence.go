package components

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"retreat-api/internal/infra/kvstore"
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/usecase/shared"
	"retreat-api/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// FormStateStore is the anti-spam state backend plus its expiry hook.
type FormStateStore interface {
	shared.KVStore
	kvstore.Sweepable
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewFormStateStore,
		func(s FormStateStore) shared.KVStore { return s },
		NewSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewFormStateStore(cfg config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) (FormStateStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if pool == nil {
			return nil, errors.New("postgres form state store requires a database pool")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := migrations.Apply(ctx, pool); err != nil {
			return nil, err
		}
		logger.Info("form state store ready", "driver", cfg.Store.Driver)
		return kvstore.NewPostgres(pool, clk), nil
	default:
		logger.Info("form state store ready", "driver", config.StoreDriverMemory)
		return kvstore.NewMemory(clk), nil
	}
}

func NewSweeper(cfg config.Config, store FormStateStore, clk clock.Clock, logger *slog.Logger) *kvstore.Sweeper {
	return kvstore.NewSweeper(store, clk, cfg.Store.TTL, cfg.Store.SweepInterval, logger)
}

func registerSweeper(lc fx.Lifecycle, s *kvstore.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
