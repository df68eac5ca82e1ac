package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorhub/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository using pgxpool.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetProfile returns a profile by id.
func (r *ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT id, role, display_name, bio, avatar_url, location, sport, company_name, website, created_at, updated_at FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &p.Role, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.Location, &p.Sport, &p.CompanyName, &p.Website, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile inserts the profile or updates its editable fields. The
// role of an existing profile is never overwritten.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO profiles (id, role, display_name, bio, avatar_url, location, sport, company_name, website)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (id) DO UPDATE SET
            display_name = EXCLUDED.display_name,
            bio          = EXCLUDED.bio,
            avatar_url   = EXCLUDED.avatar_url,
            location     = EXCLUDED.location,
            sport        = EXCLUDED.sport,
            company_name = EXCLUDED.company_name,
            website      = EXCLUDED.website,
            updated_at   = now()
        RETURNING role, created_at, updated_at`,
		p.ID, p.Role, p.DisplayName, p.Bio, p.AvatarURL, p.Location, p.Sport, p.CompanyName, p.Website).
		Scan(&p.Role, &p.CreatedAt, &p.UpdatedAt)
}
