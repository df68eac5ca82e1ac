package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorhub/internal/core/domain"
)

// FavoriteRepository implements port.FavoriteRepository using pgxpool.
type FavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository returns a new repository instance.
func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// ListFavorites returns the user's favorites with their campaigns, most
// recently added first.
func (r *FavoriteRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT f.user_id, f.campaign_id, f.created_at, `+campaignColumns+`
        FROM favorites f
        JOIN campaigns c ON c.id = f.campaign_id
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FavoriteCampaign, error) {
		var fc domain.FavoriteCampaign
		dest := append([]any{&fc.UserID, &fc.CampaignID, &fc.CreatedAt}, campaignDest(&fc.Campaign)...)
		err := row.Scan(dest...)
		return fc, err
	})
}

// AddFavorite inserts the favorite unless it already exists.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, userID, campaignID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO favorites (user_id, campaign_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, campaignID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveFavorite deletes the favorite if present.
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, campaignID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND campaign_id = $2`, userID, campaignID)
	return err
}
