package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
	"sponsorhub/internal/metrics"
)

// SponsorshipUseCase implements port.SponsorshipUseCase. Authorisation
// happens here; the repository applies the transitions atomically and
// re-checks the PENDING state under row locks.
type SponsorshipUseCase struct {
	requests      port.SponsorshipRepository
	campaigns     port.CampaignRepository
	profiles      port.ProfileRepository
	contributions port.ContributionRepository
}

// NewSponsorshipUseCase creates a new usecase with the provided repositories.
func NewSponsorshipUseCase(
	requests port.SponsorshipRepository,
	campaigns port.CampaignRepository,
	profiles port.ProfileRepository,
	contributions port.ContributionRepository,
) *SponsorshipUseCase {
	return &SponsorshipUseCase{
		requests:      requests,
		campaigns:     campaigns,
		profiles:      profiles,
		contributions: contributions,
	}
}

// CreateRequest records a sponsor's offer against an active campaign. The
// request starts PENDING with its escrow HELD.
func (u *SponsorshipUseCase) CreateRequest(ctx context.Context, actor uuid.UUID, req port.CreateSponsorshipReq) (*domain.SponsorshipRequest, error) {
	profile, err := requireProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleSponsor {
		return nil, fmt.Errorf("only sponsors send sponsorship requests: %w", domain.ErrForbidden)
	}
	if req.CampaignID == uuid.Nil {
		return nil, invalid("campaign_id is required")
	}
	if err = validAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	message, err := validText("message", req.Message, 0, 2000)
	if err != nil {
		return nil, err
	}

	c, err := u.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.OwnerID == actor {
		return nil, fmt.Errorf("cannot sponsor own campaign: %w", domain.ErrForbidden)
	}
	if c.Status != domain.CampaignActive {
		return nil, fmt.Errorf("campaign is %s: %w", c.Status, domain.ErrConflict)
	}

	if req.PerkTierID != nil {
		tier := findTier(c.PerkTiers, *req.PerkTierID)
		if tier == nil {
			return nil, invalid("perk tier does not belong to campaign")
		}
		if !tier.HasCapacity() {
			return nil, domain.ErrTierFull
		}
		if req.Amount.LessThan(tier.Amount) {
			return nil, invalid("amount must be at least the tier amount %s", tier.Amount.StringFixed(2))
		}
	}

	r := &domain.SponsorshipRequest{
		ID:              uuid.New(),
		CampaignID:      c.ID,
		PerkTierID:      req.PerkTierID,
		SponsorID:       actor,
		Amount:          req.Amount,
		Message:         message,
		Status:          domain.SponsorshipPending,
		EscrowStatus:    domain.EscrowHeld,
		CampaignTitle:   c.Title,
		CampaignOwnerID: c.OwnerID,
	}
	if err = u.requests.CreateSponsorshipRequest(ctx, r); err != nil {
		return nil, err
	}
	metrics.SponsorshipTransition(string(r.Status), 0)
	return r, nil
}

// GetRequest returns a request visible to the caller.
func (u *SponsorshipUseCase) GetRequest(ctx context.Context, actor, id uuid.UUID) (*domain.SponsorshipRequest, error) {
	r, err := u.requests.GetSponsorshipRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	// non-participants must not learn that the request exists
	if r == nil || (r.SponsorID != actor && r.CampaignOwnerID != actor) {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// ListRequests lists requests sent by the caller (AsSponsor) or received on
// the caller's campaigns (AsTalent), optionally narrowed to one campaign.
func (u *SponsorshipUseCase) ListRequests(ctx context.Context, actor uuid.UUID, req port.ListSponsorshipsReq) ([]domain.SponsorshipRequest, error) {
	as := req.As
	if as == "" {
		profile, err := requireProfile(ctx, u.profiles, actor)
		if err != nil {
			return nil, err
		}
		as = port.AsSponsor
		if profile.Role.IsTalent() {
			as = port.AsTalent
		}
	}

	var f domain.SponsorshipFilter
	switch as {
	case port.AsSponsor:
		f.SponsorID = &actor
	case port.AsTalent:
		f.OwnerID = &actor
	default:
		return nil, invalid("as must be %q or %q", port.AsSponsor, port.AsTalent)
	}
	f.CampaignID = req.CampaignID
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, invalid("unknown status %q", req.Status)
		}
		f.Status = req.Status
	}

	list, err := u.requests.ListSponsorshipRequests(ctx, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.SponsorshipRequest{}
	}
	return list, nil
}

// UpdateRequestStatus moves a pending request to status. The campaign
// owner accepts or rejects; the sponsor cancels.
func (u *SponsorshipUseCase) UpdateRequestStatus(ctx context.Context, actor, id uuid.UUID, status domain.SponsorshipStatus) (*domain.SponsorshipRequest, error) {
	if !status.Valid() || status == domain.SponsorshipPending {
		return nil, invalid("status must be ACCEPTED, REJECTED or CANCELLED")
	}
	r, err := u.GetRequest(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.SponsorshipAccepted, domain.SponsorshipRejected:
		if r.CampaignOwnerID != actor {
			return nil, fmt.Errorf("only the campaign owner may %s: %w", verb(status), domain.ErrForbidden)
		}
	case domain.SponsorshipCancelled:
		if r.SponsorID != actor {
			return nil, fmt.Errorf("only the sponsor may cancel: %w", domain.ErrForbidden)
		}
	}
	if r.Status.Terminal() {
		return nil, fmt.Errorf("request already %s: %w", r.Status, domain.ErrInvalidTransition)
	}

	var updated *domain.SponsorshipRequest
	if status == domain.SponsorshipAccepted {
		updated, err = u.requests.AcceptSponsorshipRequest(ctx, id)
	} else {
		updated, err = u.requests.CloseSponsorshipRequest(ctx, id, status)
	}
	if err != nil {
		return nil, err
	}
	amount, _ := updated.Amount.Float64()
	metrics.SponsorshipTransition(string(updated.Status), amount)
	return updated, nil
}

// ListMyContributions returns the caller's contributions as a sponsor.
func (u *SponsorshipUseCase) ListMyContributions(ctx context.Context, actor uuid.UUID) ([]domain.Contribution, error) {
	list, err := u.contributions.ListContributionsBySponsor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Contribution{}
	}
	return list, nil
}

func findTier(tiers []domain.PerkTier, id uuid.UUID) *domain.PerkTier {
	for i := range tiers {
		if tiers[i].ID == id {
			return &tiers[i]
		}
	}
	return nil
}

func verb(s domain.SponsorshipStatus) string {
	if s == domain.SponsorshipAccepted {
		return "accept"
	}
	return "reject"
}
