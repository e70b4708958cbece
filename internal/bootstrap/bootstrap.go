package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/shiptrack/internal/adapters/kafka"
	"github.com/mahabubulhasibshawon/shiptrack/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/shiptrack/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/shiptrack/internal/application"
	"github.com/mahabubulhasibshawon/shiptrack/internal/config"
	"github.com/mahabubulhasibshawon/shiptrack/internal/ports"
)

// App holds the wired service and everything that has to be closed with it.
type App struct {
	Service *application.ShipmentService
	Store   ports.KeyValueStore

	closers []func() error
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := &App{Store: store, closers: []func() error{store.Close}}
	logger.Info("storage ready", zap.String("backend", string(cfg.Backend)), zap.String("key", cfg.StorageKey))

	repo := repository.NewBlobRepository(store,
		repository.WithKey(cfg.StorageKey),
		repository.WithStrict(cfg.Strict),
		repository.WithLogger(logger),
	)

	opts := []application.Option{
		application.WithLogger(logger),
		application.WithIDGenerator(IDGenerator(cfg.IDStrategy)),
	}
	if cfg.KafkaBroker != "" {
		producer := kafka.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		app.closers = append(app.closers, producer.Close)
		opts = append(opts, application.WithPublisher(producer))
		logger.Info("publishing shipment events", zap.String("broker", cfg.KafkaBroker), zap.String("topic", cfg.KafkaTopic))
	}

	app.Service = application.NewShipmentService(repo, opts...)
	return app, nil
}

// OpenStore connects the key-value backend named by cfg.Backend.
func OpenStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return repository.NewMemoryStore(), nil
	case config.BackendFile:
		store, err := repository.NewFileStore(cfg.StorageDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendSQLite:
		store, err := repository.OpenSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		store, err := repository.OpenPostgresStore(ctx, cfg.GetDBURL())
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendRedis:
		store := redis.NewStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, 0)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

func IDGenerator(strategy config.IDStrategy) application.IDGenerator {
	if strategy == config.IDStrategyCount {
		return application.CountIDGenerator
	}
	return application.MaxIDGenerator
}
