package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignFunded    CampaignStatus = "FUNDED"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// campaignTransitions lists the status changes an owner may request.
// FUNDED is only ever entered by accepting a sponsorship.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:  {CampaignActive, CampaignCancelled},
	CampaignActive: {CampaignCompleted, CampaignCancelled},
	CampaignFunded: {CampaignCompleted},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignFunded, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an owner may move a campaign from s to
// next. Setting the current status again is a no-op and always allowed.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range campaignTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Campaign is a funding goal created by a talent profile.
// Amounts are stored as NUMERIC(12,2).
type Campaign struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Sport          string          `json:"sport"`
	ImageURL       string          `json:"image_url"`
	GoalAmount     decimal.Decimal `json:"goal_amount"`
	CurrentFunding decimal.Decimal `json:"current_funding"`
	Status         CampaignStatus  `json:"status"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	PerkTiers []PerkTier `json:"perk_tiers,omitempty"`
}

// GoalReached reports whether the campaign funding covers its goal.
func (c *Campaign) GoalReached() bool {
	return c.CurrentFunding.GreaterThanOrEqual(c.GoalAmount)
}

// CampaignFilter narrows a campaign listing. Zero values mean "any".
type CampaignFilter struct {
	Status  CampaignStatus
	Sport   string
	OwnerID *uuid.UUID
	Query   string
	Limit   int
	Offset  int
}
