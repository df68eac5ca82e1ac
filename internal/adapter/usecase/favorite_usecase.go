package usecase

import (
	"context"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// FavoriteUseCase implements port.FavoriteUseCase.
type FavoriteUseCase struct {
	favorites port.FavoriteRepository
	campaigns port.CampaignRepository
	profiles  port.ProfileRepository
}

// NewFavoriteUseCase creates a new usecase with the provided repositories.
func NewFavoriteUseCase(favorites port.FavoriteRepository, campaigns port.CampaignRepository, profiles port.ProfileRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, campaigns: campaigns, profiles: profiles}
}

// ListFavorites returns the caller's favorites with their campaigns.
func (u *FavoriteUseCase) ListFavorites(ctx context.Context, actor uuid.UUID) ([]domain.FavoriteCampaign, error) {
	list, err := u.favorites.ListFavorites(ctx, actor)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.FavoriteCampaign{}
	}
	return list, nil
}

// AddFavorite bookmarks a campaign. Adding an existing favorite succeeds
// and reports false.
func (u *FavoriteUseCase) AddFavorite(ctx context.Context, actor, campaignID uuid.UUID) (bool, error) {
	if campaignID == uuid.Nil {
		return false, invalid("campaign_id is required")
	}
	if _, err := requireProfile(ctx, u.profiles, actor); err != nil {
		return false, err
	}
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, domain.ErrNotFound
	}
	return u.favorites.AddFavorite(ctx, actor, campaignID)
}

// RemoveFavorite drops a bookmark. Removing a missing favorite is not an
// error.
func (u *FavoriteUseCase) RemoveFavorite(ctx context.Context, actor, campaignID uuid.UUID) error {
	return u.favorites.RemoveFavorite(ctx, actor, campaignID)
}
