package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contribution records money committed to a campaign by an accepted
// sponsorship request. There is at most one per request.
type Contribution struct {
	ID                   uuid.UUID       `json:"id"`
	CampaignID           uuid.UUID       `json:"campaign_id"`
	SponsorID            uuid.UUID       `json:"sponsor_id"`
	SponsorshipRequestID uuid.UUID       `json:"sponsorship_request_id"`
	PerkTierID           *uuid.UUID      `json:"perk_tier_id,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	CreatedAt            time.Time       `json:"created_at"`
}
