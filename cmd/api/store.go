package main

import (
	"context"
	"fmt"
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	mongostore "go-jobboard-backend/internal/repository/mongo"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// store bundles the repositories of one backend with its lifecycle.
type store struct {
	users        domain.UserRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	ping         usecase.Pinger // nil when there is nothing to ping
	close        func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		mem := memory.NewStore()
		return &store{
			users:        mem.Users(),
			jobs:         mem.Jobs(),
			applications: mem.Applications(),
			close:        func() {},
		}, nil

	case config.StoreMongo:
		client, db, err := database.NewMongoConnection(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logger.Log.Info("Connected to MongoDB", "database", cfg.MongoDatabase)
		return &store{
			users:        mongostore.NewUserRepository(db),
			jobs:         mongostore.NewJobRepository(db),
			applications: mongostore.NewApplicationRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if cfg.DBAutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			logger.Log.Info("Database schema is up to date")
		}
		return &store{
			users:        postgres.NewUserRepository(pool),
			jobs:         postgres.NewJobRepository(pool),
			applications: postgres.NewApplicationRepository(pool),
			ping:         pool.Ping,
			close:        pool.Close,
		}, nil
	}
}
