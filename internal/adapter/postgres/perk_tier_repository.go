package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorhub/internal/core/domain"
)

const perkTierColumns = `id, campaign_id, name, description, amount, max_sponsors, current_sponsors, perks, sort_order, created_at, updated_at`

func perkTierDest(t *domain.PerkTier) []any {
	return []any{
		&t.ID, &t.CampaignID, &t.Name, &t.Description, &t.Amount, &t.MaxSponsors,
		&t.CurrentSponsors, &t.Perks, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt,
	}
}

// PerkTierRepository implements port.PerkTierRepository using pgxpool.
type PerkTierRepository struct {
	pool *pgxpool.Pool
}

// NewPerkTierRepository returns a new repository instance.
func NewPerkTierRepository(pool *pgxpool.Pool) *PerkTierRepository {
	return &PerkTierRepository{pool: pool}
}

// ListPerkTiers returns the tiers of a campaign ordered for display.
func (r *PerkTierRepository) ListPerkTiers(ctx context.Context, campaignID uuid.UUID) ([]domain.PerkTier, error) {
	return listPerkTiers(ctx, r.pool, campaignID)
}

func listPerkTiers(ctx context.Context, q querier, campaignID uuid.UUID) ([]domain.PerkTier, error) {
	rows, err := q.Query(ctx, `SELECT `+perkTierColumns+` FROM perk_tiers WHERE campaign_id = $1 ORDER BY sort_order, amount, created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PerkTier, error) {
		var t domain.PerkTier
		err := row.Scan(perkTierDest(&t)...)
		return t, err
	})
}

// GetPerkTier returns a perk tier by id.
func (r *PerkTierRepository) GetPerkTier(ctx context.Context, id uuid.UUID) (*domain.PerkTier, error) {
	var t domain.PerkTier
	err := r.pool.QueryRow(ctx, `SELECT `+perkTierColumns+` FROM perk_tiers WHERE id = $1`, id).Scan(perkTierDest(&t)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreatePerkTier inserts a perk tier.
func (r *PerkTierRepository) CreatePerkTier(ctx context.Context, t *domain.PerkTier) error {
	return insertPerkTier(ctx, r.pool, t)
}

func insertPerkTier(ctx context.Context, q querier, t *domain.PerkTier) error {
	if t.Perks == nil {
		t.Perks = []string{}
	}
	return q.QueryRow(ctx, `
        INSERT INTO perk_tiers (id, campaign_id, name, description, amount, max_sponsors, perks, sort_order)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING current_sponsors, created_at, updated_at`,
		t.ID, t.CampaignID, t.Name, t.Description, t.Amount, t.MaxSponsors, t.Perks, t.SortOrder).
		Scan(&t.CurrentSponsors, &t.CreatedAt, &t.UpdatedAt)
}

// UpdatePerkTier writes the editable fields of t. The cap may not drop
// below the number of sponsors already accepted into the tier.
func (r *PerkTierRepository) UpdatePerkTier(ctx context.Context, t *domain.PerkTier) error {
	if t.Perks == nil {
		t.Perks = []string{}
	}
	err := r.pool.QueryRow(ctx, `
        UPDATE perk_tiers SET
            name = $2, description = $3, amount = $4, max_sponsors = $5,
            perks = $6, sort_order = $7, updated_at = now()
        WHERE id = $1 AND ($5::integer IS NULL OR $5::integer >= current_sponsors)
        RETURNING current_sponsors, updated_at`,
		t.ID, t.Name, t.Description, t.Amount, t.MaxSponsors, t.Perks, t.SortOrder).
		Scan(&t.CurrentSponsors, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("max_sponsors below current sponsors: %w", domain.ErrConflict)
	}
	return err
}

// DeletePerkTier removes a tier that has no accepted sponsors.
func (r *PerkTierRepository) DeletePerkTier(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM perk_tiers WHERE id = $1 AND current_sponsors = 0`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("perk tier has sponsors: %w", domain.ErrConflict)
	}
	return nil
}
