package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	mongostore "go-jobboard-backend/internal/repository/mongo"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Prepare the job board database",
	Long: `migrate creates the tables, constraints and indexes the API expects.
It is safe to run repeatedly against the same database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Init(cfg.LogLevel)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

var postgresCmd = &cobra.Command{
	Use:   "postgres",
	Short: "Create the PostgreSQL schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd.Context())
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Log.Info("PostgreSQL schema is up to date")
		return nil
	},
}

var mongoCmd = &cobra.Command{
	Use:   "mongo",
	Short: "Create the MongoDB indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd.Context())
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		client, db, err := database.NewMongoConnection(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		logger.Log.Info("MongoDB indexes are up to date", "database", cfg.MongoDatabase)
		return nil
	},
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	rootCmd.AddCommand(postgresCmd, mongoCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
