package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a campaign bookmarked by a user.
type Favorite struct {
	UserID     uuid.UUID `json:"user_id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteCampaign is a favorite joined with its campaign.
type FavoriteCampaign struct {
	Favorite
	Campaign Campaign `json:"campaign"`
}
