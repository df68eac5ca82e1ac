package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PerkTier is a priced sponsorship package offered by a campaign.
// MaxSponsors nil means the tier is uncapped.
type PerkTier struct {
	ID              uuid.UUID       `json:"id"`
	CampaignID      uuid.UUID       `json:"campaign_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	MaxSponsors     *int            `json:"max_sponsors,omitempty"`
	CurrentSponsors int             `json:"current_sponsors"`
	Perks           []string        `json:"perks"`
	SortOrder       int             `json:"sort_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// HasCapacity reports whether another sponsor fits into the tier.
func (t *PerkTier) HasCapacity() bool {
	return t.MaxSponsors == nil || t.CurrentSponsors < *t.MaxSponsors
}
