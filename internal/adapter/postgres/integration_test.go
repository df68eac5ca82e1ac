//go:build integration

package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorhub/internal/config/configs"
	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/db"
)

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres integration")
	}
	require.NoError(t, db.Migrate(dsn))

	addr, err := url.Parse(dsn)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *addr, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type fixture struct {
	owner, sponsor domain.Profile
	campaign       domain.Campaign
	tier           domain.PerkTier
}

func newFixture(t *testing.T, pool *pgxpool.Pool, goal int64, maxSponsors *int) fixture {
	t.Helper()
	ctx := context.Background()
	profiles := NewProfileRepository(pool)
	campaigns := NewCampaignRepository(pool)

	f := fixture{
		owner:   domain.Profile{ID: uuid.New(), Role: domain.RoleAthlete, DisplayName: "Owner"},
		sponsor: domain.Profile{ID: uuid.New(), Role: domain.RoleSponsor, DisplayName: "Sponsor"},
	}
	require.NoError(t, profiles.UpsertProfile(ctx, &f.owner))
	require.NoError(t, profiles.UpsertProfile(ctx, &f.sponsor))

	f.campaign = domain.Campaign{
		ID:         uuid.New(),
		OwnerID:    f.owner.ID,
		Title:      "Integration season",
		GoalAmount: decimal.NewFromInt(goal),
		Status:     domain.CampaignActive,
	}
	tiers, err := campaigns.CreateCampaign(ctx, &f.campaign, []domain.PerkTier{{
		ID:          uuid.New(),
		Name:        "Partner",
		Amount:      decimal.NewFromInt(100),
		MaxSponsors: maxSponsors,
	}})
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	f.tier = tiers[0]
	return f
}

func (f fixture) request(t *testing.T, repo *SponsorshipRepository, amount int64) *domain.SponsorshipRequest {
	t.Helper()
	req := &domain.SponsorshipRequest{
		ID:         uuid.New(),
		CampaignID: f.campaign.ID,
		PerkTierID: &f.tier.ID,
		SponsorID:  f.sponsor.ID,
		Amount:     decimal.NewFromInt(amount),
	}
	require.NoError(t, repo.CreateSponsorshipRequest(context.Background(), req))
	return req
}

func TestIntegrationAcceptFundsCampaign(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	f := newFixture(t, pool, 500, nil)
	repo := NewSponsorshipRepository(pool)

	req := f.request(t, repo, 500)
	assert.Equal(t, domain.EscrowHeld, req.EscrowStatus)

	accepted, err := repo.AcceptSponsorshipRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorshipAccepted, accepted.Status)
	assert.Equal(t, domain.EscrowReleased, accepted.EscrowStatus)
	assert.NotNil(t, accepted.DecidedAt)

	c, err := NewCampaignRepository(pool).GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, c.CurrentFunding.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.CampaignFunded, c.Status)
	require.Len(t, c.PerkTiers, 1)
	assert.Equal(t, 1, c.PerkTiers[0].CurrentSponsors)

	contribs, err := NewContributionRepository(pool).ListContributionsByCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.Len(t, contribs, 1)
	assert.Equal(t, req.ID, contribs[0].SponsorshipRequestID)

	_, err = repo.AcceptSponsorshipRequest(ctx, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = NewCampaignRepository(pool).DeleteCampaign(ctx, f.campaign.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestIntegrationConcurrentAcceptRespectsCap(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	limit := 1
	f := newFixture(t, pool, 10000, &limit)
	repo := NewSponsorshipRepository(pool)

	reqs := []*domain.SponsorshipRequest{f.request(t, repo, 100), f.request(t, repo, 100), f.request(t, repo, 100)}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		full int
	)
	for _, r := range reqs {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := repo.AcceptSponsorshipRequest(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, domain.ErrTierFull):
				full++
			}
		}(r.ID)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 2, full)

	c, err := NewCampaignRepository(pool).GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, c.CurrentFunding.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, c.PerkTiers[0].CurrentSponsors)
}

func TestIntegrationCloseAndFavorites(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	f := newFixture(t, pool, 1000, nil)
	repo := NewSponsorshipRepository(pool)

	req := f.request(t, repo, 100)
	closed, err := repo.CloseSponsorshipRequest(ctx, req.ID, domain.SponsorshipCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowReturned, closed.EscrowStatus)

	_, err = repo.CloseSponsorshipRequest(ctx, req.ID, domain.SponsorshipRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = repo.CloseSponsorshipRequest(ctx, uuid.New(), domain.SponsorshipRejected)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	favs := NewFavoriteRepository(pool)
	created, err := favs.AddFavorite(ctx, f.sponsor.ID, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = favs.AddFavorite(ctx, f.sponsor.ID, f.campaign.ID)
	require.NoError(t, err)
	assert.False(t, created)

	list, err := favs.ListFavorites(ctx, f.sponsor.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.campaign.Title, list[0].Campaign.Title)

	n, err := NewStatsRepository(pool).CountFavorites(ctx, f.sponsor.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, favs.RemoveFavorite(ctx, f.sponsor.ID, f.campaign.ID))
	require.NoError(t, favs.RemoveFavorite(ctx, f.sponsor.ID, f.campaign.ID))
}

func TestIntegrationReconcileFunding(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	f := newFixture(t, pool, 10000, nil)
	repo := NewSponsorshipRepository(pool)
	campaigns := NewCampaignRepository(pool)

	req := f.request(t, repo, 250)
	_, err := repo.AcceptSponsorshipRequest(ctx, req.ID)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `UPDATE campaigns SET current_funding = 999 WHERE id = $1`, f.campaign.ID)
	require.NoError(t, err)

	n, err := campaigns.ReconcileFunding(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	c, err := campaigns.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, c.CurrentFunding.Equal(decimal.NewFromInt(250)), c.CurrentFunding.String())

	n, err = campaigns.ReconcileFunding(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIntegrationUpdateCampaignStaleRow(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	f := newFixture(t, pool, 1000, nil)
	campaigns := NewCampaignRepository(pool)

	c, err := campaigns.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	stale := *c

	c.Title = "Renamed"
	require.NoError(t, campaigns.UpdateCampaign(ctx, c))
	assert.True(t, c.UpdatedAt.After(stale.UpdatedAt) || c.UpdatedAt.Equal(stale.UpdatedAt))

	stale.Title = "Lost update"
	err = campaigns.UpdateCampaign(ctx, &stale)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := campaigns.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestIntegrationPerkTierCapBelowSponsors(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	limit := 3
	f := newFixture(t, pool, 10000, &limit)
	repo := NewSponsorshipRepository(pool)
	tiers := NewPerkTierRepository(pool)

	for range 2 {
		_, err := repo.AcceptSponsorshipRequest(ctx, f.request(t, repo, 100).ID)
		require.NoError(t, err)
	}

	tier, err := tiers.GetPerkTier(ctx, f.tier.ID)
	require.NoError(t, err)
	require.Equal(t, 2, tier.CurrentSponsors)

	one := 1
	tier.MaxSponsors = &one
	assert.ErrorIs(t, tiers.UpdatePerkTier(ctx, tier), domain.ErrConflict)

	two := 2
	tier.MaxSponsors = &two
	require.NoError(t, tiers.UpdatePerkTier(ctx, tier))
	assert.Equal(t, 2, tier.CurrentSponsors)

	tier.MaxSponsors = nil
	require.NoError(t, tiers.UpdatePerkTier(ctx, tier))

	assert.ErrorIs(t, tiers.DeletePerkTier(ctx, tier.ID), domain.ErrConflict)
}

func TestIntegrationClosingCampaignRejectsPending(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	f := newFixture(t, pool, 10000, nil)
	repo := NewSponsorshipRepository(pool)
	campaigns := NewCampaignRepository(pool)

	accepted := f.request(t, repo, 100)
	_, err := repo.AcceptSponsorshipRequest(ctx, accepted.ID)
	require.NoError(t, err)
	pending := f.request(t, repo, 200)

	c, err := campaigns.GetCampaign(ctx, f.campaign.ID)
	require.NoError(t, err)
	c.Status = domain.CampaignCancelled
	require.NoError(t, campaigns.UpdateCampaign(ctx, c))

	got, err := repo.GetSponsorshipRequest(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorshipRejected, got.Status)
	assert.Equal(t, domain.EscrowReturned, got.EscrowStatus)
	assert.NotNil(t, got.DecidedAt)

	got, err = repo.GetSponsorshipRequest(ctx, accepted.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SponsorshipAccepted, got.Status)

	list, err := repo.ListSponsorshipRequests(ctx, domain.SponsorshipFilter{
		CampaignID: &f.campaign.ID,
		Status:     domain.SponsorshipRejected,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID, list[0].ID)
}
