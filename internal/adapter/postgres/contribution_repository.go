package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorhub/internal/core/domain"
)

// ContributionRepository implements port.ContributionRepository using pgxpool.
type ContributionRepository struct {
	pool *pgxpool.Pool
}

// NewContributionRepository returns a new repository instance.
func NewContributionRepository(pool *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{pool: pool}
}

// ListContributionsBySponsor returns a sponsor's contributions, newest first.
func (r *ContributionRepository) ListContributionsBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]domain.Contribution, error) {
	return r.list(ctx, `sponsor_id`, sponsorID)
}

// ListContributionsByCampaign returns a campaign's contributions, newest first.
func (r *ContributionRepository) ListContributionsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Contribution, error) {
	return r.list(ctx, `campaign_id`, campaignID)
}

func (r *ContributionRepository) list(ctx context.Context, column string, id uuid.UUID) ([]domain.Contribution, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, sponsor_id, sponsorship_request_id, perk_tier_id, amount, created_at
        FROM sponsor_contributions
        WHERE `+column+` = $1
        ORDER BY created_at DESC, id`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contribution, error) {
		var c domain.Contribution
		err := row.Scan(&c.ID, &c.CampaignID, &c.SponsorID, &c.SponsorshipRequestID, &c.PerkTierID, &c.Amount, &c.CreatedAt)
		return c, err
	})
}
