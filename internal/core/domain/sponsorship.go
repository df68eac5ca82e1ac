package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SponsorshipStatus tracks a sponsorship request through its lifecycle.
// PENDING is the only state that may change.
type SponsorshipStatus string

const (
	SponsorshipPending   SponsorshipStatus = "PENDING"
	SponsorshipAccepted  SponsorshipStatus = "ACCEPTED"
	SponsorshipRejected  SponsorshipStatus = "REJECTED"
	SponsorshipCancelled SponsorshipStatus = "CANCELLED"
)

// EscrowStatus is a label describing where the offered money would be.
// Nothing holds funds; the label follows the request status.
type EscrowStatus string

const (
	EscrowHeld     EscrowStatus = "HELD"
	EscrowReleased EscrowStatus = "RELEASED"
	EscrowReturned EscrowStatus = "RETURNED"
)

// Valid reports whether s is a known status.
func (s SponsorshipStatus) Valid() bool {
	switch s {
	case SponsorshipPending, SponsorshipAccepted, SponsorshipRejected, SponsorshipCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s SponsorshipStatus) Terminal() bool {
	return s != SponsorshipPending
}

// CanTransitionTo reports whether a request in status s may move to next.
func (s SponsorshipStatus) CanTransitionTo(next SponsorshipStatus) bool {
	return s == SponsorshipPending && next.Valid() && next != SponsorshipPending
}

// Escrow returns the escrow label implied by the status.
func (s SponsorshipStatus) Escrow() EscrowStatus {
	switch s {
	case SponsorshipAccepted:
		return EscrowReleased
	case SponsorshipRejected, SponsorshipCancelled:
		return EscrowReturned
	default:
		return EscrowHeld
	}
}

// SponsorshipRequest is a sponsor's offer against a campaign.
type SponsorshipRequest struct {
	ID           uuid.UUID         `json:"id"`
	CampaignID   uuid.UUID         `json:"campaign_id"`
	PerkTierID   *uuid.UUID        `json:"perk_tier_id,omitempty"`
	SponsorID    uuid.UUID         `json:"sponsor_id"`
	Amount       decimal.Decimal   `json:"amount"`
	Message      string            `json:"message"`
	Status       SponsorshipStatus `json:"status"`
	EscrowStatus EscrowStatus      `json:"escrow_status"`
	DecidedAt    *time.Time        `json:"decided_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Denormalised for listings; filled by repository reads.
	CampaignTitle   string    `json:"campaign_title,omitempty"`
	CampaignOwnerID uuid.UUID `json:"campaign_owner_id"`
}

// SponsorshipFilter narrows a request listing. At least one of SponsorID
// and OwnerID is expected to be set by callers.
type SponsorshipFilter struct {
	SponsorID  *uuid.UUID
	OwnerID    *uuid.UUID
	CampaignID *uuid.UUID
	Status     SponsorshipStatus
}
