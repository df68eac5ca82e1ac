package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"sponsorhub/internal/adapter/auth"
	httpadapter "sponsorhub/internal/adapter/http"
	"sponsorhub/internal/adapter/postgres"
	"sponsorhub/internal/adapter/usecase"
	"sponsorhub/internal/db"
)

// runServe optionally migrates the schema, wires repositories and use cases
// into the HTTP handler and serves until a termination signal arrives. The
// server is then shut down gracefully within HTTP.ShutdownTimeout.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx := cmd.Context()
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	profiles := postgres.NewProfileRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	tiers := postgres.NewPerkTierRepository(pool)
	requests := postgres.NewSponsorshipRepository(pool)
	favorites := postgres.NewFavoriteRepository(pool)
	contributions := postgres.NewContributionRepository(pool)
	stats := postgres.NewStatsRepository(pool)

	svc := httpadapter.Services{
		Profiles:     usecase.NewProfileUseCase(profiles),
		Campaigns:    usecase.NewCampaignUseCase(campaigns, tiers, profiles, contributions),
		Sponsorships: usecase.NewSponsorshipUseCase(requests, campaigns, profiles, contributions),
		Favorites:    usecase.NewFavoriteUseCase(favorites, campaigns, profiles),
		Dashboard:    usecase.NewDashboardUseCase(stats, profiles),
		Verifier:     auth.New(cfg.Auth, &http.Client{Timeout: 5 * time.Second}),
		Ready:        pool.Ping,
	}
	handler := httpadapter.NewHandler(svc, httpadapter.Options{
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		RateLimit:         cfg.Rate,
		TrustProxyHeaders: cfg.HTTP.TrustProxyHeaders,
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("auth_mode", cfg.Auth.NormalizedMode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return nil
}
