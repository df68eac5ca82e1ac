package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sponsorhub/db/migrations"
	"sponsorhub/internal/adapter/postgres"
	"sponsorhub/internal/config"
	"sponsorhub/internal/db"
)

var rootCmd = &cobra.Command{
	Use:   "sponsorhub",
	Short: "Sponsorship marketplace API",
	Long: `sponsorhub connects athletes, teams and events with sponsors.

Without a subcommand the HTTP API is served. All configuration comes from
environment variables, optionally loaded from a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Move the schema to the latest version, or to --version when given.
Version 0 rolls every migration back.`,
	RunE: runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo profiles, campaigns and sponsorship requests",
	RunE:  runSeed,
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute campaign funding from recorded contributions",
	RunE:  runReconcile,
}

var migrateVersion uint

func init() {
	migrateCmd.Flags().UintVar(&migrateVersion, "version", migrations.Version, "target schema version")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, reconcileCmd)
}

// main is the entry point of sponsorhub. Commands load configuration from
// the environment, set up a structured logger and run until done or until
// a termination signal arrives.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var received os.Signal
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case received = <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	<-done

	switch {
	case err != nil:
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	case received != nil:
		os.Exit(128 + int(received.(syscall.Signal)))
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))
}

// setup loads configuration and installs the configured logger as default.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if err = db.MigrateTo(cfg.Psql.Addr.String(), migrateVersion); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied", slog.Uint64("version", uint64(migrateVersion)))
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	stats, err := db.Seed(cmd.Context(), pool)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("seed complete",
		slog.Int("profiles", stats.Profiles),
		slog.Int("campaigns", stats.Campaigns),
		slog.Int("perk_tiers", stats.PerkTiers),
		slog.Int("requests", stats.Requests))
	return nil
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	n, err := postgres.NewCampaignRepository(pool).ReconcileFunding(cmd.Context())
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	logger.Info("funding reconciled", slog.Int64("campaigns_updated", n))
	return nil
}
