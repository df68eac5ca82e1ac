package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// DashboardUseCase implements port.DashboardUseCase.
type DashboardUseCase struct {
	stats    port.StatsRepository
	profiles port.ProfileRepository
}

// NewDashboardUseCase creates a new usecase with the provided repositories.
func NewDashboardUseCase(stats port.StatsRepository, profiles port.ProfileRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, profiles: profiles}
}

// GetDashboard summarises the caller's activity. Talent profiles get
// campaign totals and pending requests received; sponsors get contribution
// totals and pending requests sent. The aggregates are read concurrently.
func (u *DashboardUseCase) GetDashboard(ctx context.Context, actor uuid.UUID) (*domain.Dashboard, error) {
	profile, err := requireProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}

	d := &domain.Dashboard{Role: profile.Role}
	pending := domain.SponsorshipFilter{Status: domain.SponsorshipPending}
	if profile.Role.IsTalent() {
		pending.OwnerID = &actor
	} else {
		pending.SponsorID = &actor
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.stats.CountSponsorshipRequests(gctx, pending)
		d.PendingRequests = n
		return err
	})
	g.Go(func() error {
		n, err := u.stats.CountFavorites(gctx, actor)
		d.Favorites = n
		return err
	})
	if profile.Role.IsTalent() {
		g.Go(func() error {
			t, err := u.stats.CampaignTotals(gctx, actor)
			d.Talent = &t
			return err
		})
	} else {
		g.Go(func() error {
			t, err := u.stats.ContributionTotals(gctx, actor)
			d.Sponsor = &t
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
