package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorhub/internal/core/domain"
)

// StatsRepository implements port.StatsRepository using pgxpool.
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository returns a new repository instance.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// CampaignTotals aggregates the campaigns owned by ownerID.
func (r *StatsRepository) CampaignTotals(ctx context.Context, ownerID uuid.UUID) (domain.CampaignTotals, error) {
	var t domain.CampaignTotals
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), count(*) FILTER (WHERE status = $2), COALESCE(sum(current_funding), 0)
        FROM campaigns WHERE owner_id = $1`, ownerID, domain.CampaignActive).
		Scan(&t.Campaigns, &t.ActiveCampaigns, &t.TotalRaised)
	return t, err
}

// ContributionTotals aggregates the contributions made by sponsorID.
func (r *StatsRepository) ContributionTotals(ctx context.Context, sponsorID uuid.UUID) (domain.ContributionTotals, error) {
	var t domain.ContributionTotals
	err := r.pool.QueryRow(ctx, `SELECT count(*), COALESCE(sum(amount), 0) FROM sponsor_contributions WHERE sponsor_id = $1`, sponsorID).
		Scan(&t.Contributions, &t.TotalContributed)
	return t, err
}

// CountSponsorshipRequests counts requests matching f.
func (r *StatsRepository) CountSponsorshipRequests(ctx context.Context, f domain.SponsorshipFilter) (int64, error) {
	w := sponsorshipWhere(f)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM sponsorship_requests sr JOIN campaigns c ON c.id = sr.campaign_id `+w.sql(), w.args...).Scan(&n)
	return n, err
}

// CountFavorites counts the user's favorites.
func (r *StatsRepository) CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM favorites WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
