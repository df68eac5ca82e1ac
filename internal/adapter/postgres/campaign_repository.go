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

const campaignColumns = `c.id, c.owner_id, c.title, c.description, c.sport, c.image_url, c.goal_amount,
            c.current_funding, c.status, c.start_date, c.end_date, c.created_at, c.updated_at`

func campaignDest(c *domain.Campaign) []any {
	return []any{
		&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.Sport, &c.ImageURL, &c.GoalAmount,
		&c.CurrentFunding, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	}
}

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns campaigns matching f, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("c.status = $%d", f.Status)
	}
	if f.Sport != "" {
		w.add("lower(c.sport) = lower($%d)", f.Sport)
	}
	if f.OwnerID != nil {
		w.add("c.owner_id = $%d", *f.OwnerID)
	}
	if f.Query != "" {
		w.add("(c.title ILIKE $%[1]d OR c.description ILIKE $%[1]d)", likePattern(f.Query))
	}
	args := append(w.args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM campaigns c %s ORDER BY c.created_at DESC, c.id LIMIT $%d OFFSET $%d`,
		campaignColumns, w.sql(), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(campaignDest(&c)...)
		return c, err
	})
}

// GetCampaign returns a campaign by id together with its perk tiers.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := getCampaign(ctx, r.pool, id)
	if err != nil || c == nil {
		return c, err
	}
	c.PerkTiers, err = listPerkTiers(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func getCampaign(ctx context.Context, q querier, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := q.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id).Scan(campaignDest(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts the campaign and its tiers atomically. If any
// tier fails to insert nothing is stored.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, tiers []domain.PerkTier) ([]domain.PerkTier, error) {
	stored := make([]domain.PerkTier, 0, len(tiers))
	err := inTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
        INSERT INTO campaigns
            (id, owner_id, title, description, sport, image_url, goal_amount, status, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING current_funding, created_at, updated_at`,
			c.ID, c.OwnerID, c.Title, c.Description, c.Sport, c.ImageURL, c.GoalAmount, c.Status, c.StartDate, c.EndDate).
			Scan(&c.CurrentFunding, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}
		for i := range tiers {
			t := tiers[i]
			t.CampaignID = c.ID
			if err = insertPerkTier(ctx, tx, &t); err != nil {
				return fmt.Errorf("insert perk tier %q: %w", t.Name, err)
			}
			stored = append(stored, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// UpdateCampaign writes the editable fields of c. The row must not have
// changed since c was read (compared by updated_at); otherwise
// domain.ErrConflict is returned. Funding is never written here.
//
// Moving the campaign to COMPLETED or CANCELLED rejects its pending
// requests in the same transaction, returning their escrow.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return inTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
        UPDATE campaigns SET
            title = $2, description = $3, sport = $4, image_url = $5,
            goal_amount = $6, end_date = $7, status = $8, updated_at = now()
        WHERE id = $1 AND updated_at = $9
        RETURNING current_funding, updated_at`,
			c.ID, c.Title, c.Description, c.Sport, c.ImageURL, c.GoalAmount, c.EndDate, c.Status, c.UpdatedAt).
			Scan(&c.CurrentFunding, &c.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("campaign %s was modified concurrently: %w", c.ID, domain.ErrConflict)
		}
		if err != nil {
			return err
		}
		if c.Status != domain.CampaignCompleted && c.Status != domain.CampaignCancelled {
			return nil
		}
		_, err = tx.Exec(ctx, `
        UPDATE sponsorship_requests
        SET status = $2, escrow_status = $3, decided_at = now(), updated_at = now()
        WHERE campaign_id = $1 AND status = $4`,
			c.ID, domain.SponsorshipRejected, domain.SponsorshipRejected.Escrow(), domain.SponsorshipPending)
		return err
	})
}

// DeleteCampaign removes the campaign with its tiers, favorites and open
// requests. Campaigns that accepted a sponsorship are kept.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return inTx(ctx, r.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		// lock campaign
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		var accepted bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sponsorship_requests WHERE campaign_id = $1 AND status = $2)`,
			id, domain.SponsorshipAccepted).Scan(&accepted)
		if err != nil {
			return err
		}
		if accepted {
			return fmt.Errorf("campaign has accepted sponsorships: %w", domain.ErrConflict)
		}
		_, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
		return err
	})
}

// ReconcileFunding recomputes current_funding as the sum of contributions.
func (r *CampaignRepository) ReconcileFunding(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns c
        SET current_funding = s.total, updated_at = now()
        FROM (
            SELECT c2.id, COALESCE(sum(sc.amount), 0) AS total
            FROM campaigns c2
            LEFT JOIN sponsor_contributions sc ON sc.campaign_id = c2.id
            GROUP BY c2.id
        ) s
        WHERE s.id = c.id AND c.current_funding <> s.total`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
