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

const sponsorshipSelect = `
        SELECT
            sr.id, sr.campaign_id, sr.perk_tier_id, sr.sponsor_id, sr.amount, sr.message,
            sr.status, sr.escrow_status, sr.decided_at, sr.created_at, sr.updated_at,
            c.title, c.owner_id
        FROM sponsorship_requests sr
        JOIN campaigns c ON c.id = sr.campaign_id`

func sponsorshipDest(s *domain.SponsorshipRequest) []any {
	return []any{
		&s.ID, &s.CampaignID, &s.PerkTierID, &s.SponsorID, &s.Amount, &s.Message,
		&s.Status, &s.EscrowStatus, &s.DecidedAt, &s.CreatedAt, &s.UpdatedAt,
		&s.CampaignTitle, &s.CampaignOwnerID,
	}
}

func sponsorshipWhere(f domain.SponsorshipFilter) whereBuilder {
	var w whereBuilder
	if f.SponsorID != nil {
		w.add("sr.sponsor_id = $%d", *f.SponsorID)
	}
	if f.OwnerID != nil {
		w.add("c.owner_id = $%d", *f.OwnerID)
	}
	if f.CampaignID != nil {
		w.add("sr.campaign_id = $%d", *f.CampaignID)
	}
	if f.Status != "" {
		w.add("sr.status = $%d", f.Status)
	}
	return w
}

// SponsorshipRepository implements port.SponsorshipRepository using pgxpool.
type SponsorshipRepository struct {
	pool *pgxpool.Pool
}

// NewSponsorshipRepository returns a new repository instance.
func NewSponsorshipRepository(pool *pgxpool.Pool) *SponsorshipRepository {
	return &SponsorshipRepository{pool: pool}
}

// CreateSponsorshipRequest inserts a pending request with escrow held.
func (r *SponsorshipRepository) CreateSponsorshipRequest(ctx context.Context, s *domain.SponsorshipRequest) error {
	s.Status = domain.SponsorshipPending
	s.EscrowStatus = s.Status.Escrow()
	return r.pool.QueryRow(ctx, `
        INSERT INTO sponsorship_requests (id, campaign_id, perk_tier_id, sponsor_id, amount, message, status, escrow_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at`,
		s.ID, s.CampaignID, s.PerkTierID, s.SponsorID, s.Amount, s.Message, s.Status, s.EscrowStatus).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetSponsorshipRequest returns a request by id.
func (r *SponsorshipRepository) GetSponsorshipRequest(ctx context.Context, id uuid.UUID) (*domain.SponsorshipRequest, error) {
	return getSponsorship(ctx, r.pool, id, false)
}

func getSponsorship(ctx context.Context, q querier, id uuid.UUID, lock bool) (*domain.SponsorshipRequest, error) {
	query := sponsorshipSelect + ` WHERE sr.id = $1`
	if lock {
		query += ` FOR UPDATE OF sr`
	}
	var s domain.SponsorshipRequest
	err := q.QueryRow(ctx, query, id).Scan(sponsorshipDest(&s)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSponsorshipRequests returns requests matching f, newest first.
func (r *SponsorshipRepository) ListSponsorshipRequests(ctx context.Context, f domain.SponsorshipFilter) ([]domain.SponsorshipRequest, error) {
	w := sponsorshipWhere(f)
	rows, err := r.pool.Query(ctx, sponsorshipSelect+" "+w.sql()+" ORDER BY sr.created_at DESC, sr.id", w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SponsorshipRequest, error) {
		var s domain.SponsorshipRequest
		err := row.Scan(sponsorshipDest(&s)...)
		return s, err
	})
}

// AcceptSponsorshipRequest applies an acceptance in one transaction. Locks
// are taken campaign first, then request, matching DeleteCampaign.
func (r *SponsorshipRepository) AcceptSponsorshipRequest(ctx context.Context, id uuid.UUID) (*domain.SponsorshipRequest, error) {
	var accepted *domain.SponsorshipRequest
	err := inTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		var campaignID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT campaign_id FROM sponsorship_requests WHERE id = $1`, id).Scan(&campaignID)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		// lock campaign
		c := domain.Campaign{ID: campaignID}
		err = tx.QueryRow(ctx, `SELECT goal_amount, current_funding, status FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
			Scan(&c.GoalAmount, &c.CurrentFunding, &c.Status)
		if err != nil {
			return err
		}
		if c.Status != domain.CampaignActive && c.Status != domain.CampaignFunded {
			return fmt.Errorf("campaign is %s: %w", c.Status, domain.ErrConflict)
		}

		// lock request and re-check its state under the lock
		req, err := getSponsorship(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if !req.Status.CanTransitionTo(domain.SponsorshipAccepted) {
			return fmt.Errorf("request is %s: %w", req.Status, domain.ErrInvalidTransition)
		}

		if req.PerkTierID != nil {
			tag, err := tx.Exec(ctx, `
        UPDATE perk_tiers SET current_sponsors = current_sponsors + 1, updated_at = now()
        WHERE id = $1 AND (max_sponsors IS NULL OR current_sponsors < max_sponsors)`, *req.PerkTierID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domain.ErrTierFull
			}
		}

		c.CurrentFunding = c.CurrentFunding.Add(req.Amount)
		if c.Status == domain.CampaignActive && c.GoalReached() {
			c.Status = domain.CampaignFunded
		}
		if _, err = tx.Exec(ctx, `UPDATE campaigns SET current_funding = $2, status = $3, updated_at = now() WHERE id = $1`,
			c.ID, c.CurrentFunding, c.Status); err != nil {
			return err
		}

		req.Status = domain.SponsorshipAccepted
		req.EscrowStatus = req.Status.Escrow()
		err = tx.QueryRow(ctx, `
        UPDATE sponsorship_requests
        SET status = $2, escrow_status = $3, decided_at = now(), updated_at = now()
        WHERE id = $1
        RETURNING decided_at, updated_at`, id, req.Status, req.EscrowStatus).
			Scan(&req.DecidedAt, &req.UpdatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
        INSERT INTO sponsor_contributions (id, campaign_id, sponsor_id, sponsorship_request_id, perk_tier_id, amount)
        VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), req.CampaignID, req.SponsorID, req.ID, req.PerkTierID, req.Amount)
		if err != nil {
			return err
		}
		accepted = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// CloseSponsorshipRequest rejects or cancels a pending request and marks
// its escrow as returned.
func (r *SponsorshipRepository) CloseSponsorshipRequest(ctx context.Context, id uuid.UUID, status domain.SponsorshipStatus) (*domain.SponsorshipRequest, error) {
	if status != domain.SponsorshipRejected && status != domain.SponsorshipCancelled {
		return nil, fmt.Errorf("close with status %s: %w", status, domain.ErrInvalidTransition)
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE sponsorship_requests
        SET status = $2, escrow_status = $3, decided_at = now(), updated_at = now()
        WHERE id = $1 AND status = $4`,
		id, status, status.Escrow(), domain.SponsorshipPending)
	if err != nil {
		return nil, err
	}
	req, err := getSponsorship(ctx, r.pool, id, false)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("request is %s: %w", req.Status, domain.ErrInvalidTransition)
	}
	return req, nil
}
