package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
	"sponsorhub/internal/metrics"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// StatusAll lifts the default ACTIVE filter of campaign listings.
	StatusAll domain.CampaignStatus = "ALL"
)

// CampaignUseCase implements port.CampaignUseCase. It enforces ownership
// and lifecycle rules and delegates persistence to the repositories.
type CampaignUseCase struct {
	campaigns     port.CampaignRepository
	tiers         port.PerkTierRepository
	profiles      port.ProfileRepository
	contributions port.ContributionRepository

	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided repositories.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	tiers port.PerkTierRepository,
	profiles port.ProfileRepository,
	contributions port.ContributionRepository,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:     campaigns,
		tiers:         tiers,
		profiles:      profiles,
		contributions: contributions,
		now:           time.Now,
	}
}

// ListCampaigns returns a page of campaigns. An empty status lists ACTIVE
// campaigns; StatusAll lists every status.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	switch f.Status {
	case "":
		f.Status = domain.CampaignActive
	case StatusAll:
		f.Status = ""
	default:
		if !f.Status.Valid() {
			return nil, invalid("unknown status %q", f.Status)
		}
	}
	if f.Limit == 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit < 1 || f.Limit > maxPageSize {
		return nil, invalid("limit must be between 1 and %d", maxPageSize)
	}
	if f.Offset < 0 {
		return nil, invalid("offset must not be negative")
	}
	f.Sport = strings.TrimSpace(f.Sport)
	f.Query = strings.TrimSpace(f.Query)

	campaigns, err := u.campaigns.ListCampaigns(ctx, f)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// GetCampaign returns a campaign with its perk tiers.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ownedCampaign returns the campaign if actor owns it.
func (u *CampaignUseCase) ownedCampaign(ctx context.Context, actor, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != actor {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// CreateCampaign creates a campaign and its perk tiers for a talent
// profile. Nothing is stored if any part is invalid.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, actor uuid.UUID, req port.CreateCampaignReq) (*domain.Campaign, error) {
	profile, err := requireProfile(ctx, u.profiles, actor)
	if err != nil {
		return nil, err
	}
	if !profile.Role.IsTalent() {
		return nil, fmt.Errorf("only athletes, teams and events create campaigns: %w", domain.ErrForbidden)
	}

	title, err := validText("title", req.Title, 1, 200)
	if err != nil {
		return nil, err
	}
	description, err := validText("description", req.Description, 0, 5000)
	if err != nil {
		return nil, err
	}
	if err = validAmount("goal_amount", req.GoalAmount); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.CampaignActive
	}
	if status != domain.CampaignDraft && status != domain.CampaignActive {
		return nil, invalid("status must be DRAFT or ACTIVE")
	}

	start := u.now().UTC()
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil && !req.EndDate.After(start) {
		return nil, invalid("end_date must be after start_date")
	}

	tiers := make([]domain.PerkTier, 0, len(req.PerkTiers))
	for i, in := range req.PerkTiers {
		t, err := newPerkTier(in)
		if err != nil {
			return nil, fmt.Errorf("perk_tiers[%d]: %w", i, err)
		}
		tiers = append(tiers, *t)
	}

	c := &domain.Campaign{
		ID:          uuid.New(),
		OwnerID:     actor,
		Title:       title,
		Description: description,
		Sport:       strings.TrimSpace(req.Sport),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		GoalAmount:  req.GoalAmount,
		Status:      status,
		StartDate:   start,
		EndDate:     req.EndDate,
	}
	c.PerkTiers, err = u.campaigns.CreateCampaign(ctx, c, tiers)
	if err != nil {
		return nil, err
	}
	metrics.CampaignCreated(string(c.Status))
	return c, nil
}

// UpdateCampaign applies a partial update on behalf of the owner.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, actor, id uuid.UUID, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	c, err := u.ownedCampaign(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if c.Title, err = validText("title", *req.Title, 1, 200); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if c.Description, err = validText("description", *req.Description, 0, 5000); err != nil {
			return nil, err
		}
	}
	if req.Sport != nil {
		c.Sport = strings.TrimSpace(*req.Sport)
	}
	if req.ImageURL != nil {
		c.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.GoalAmount != nil {
		if err = validAmount("goal_amount", *req.GoalAmount); err != nil {
			return nil, err
		}
		c.GoalAmount = *req.GoalAmount
	}
	if req.EndDate != nil {
		if !req.EndDate.After(c.StartDate) {
			return nil, invalid("end_date must be after start_date")
		}
		c.EndDate = req.EndDate
	}
	if req.Status != nil {
		next := *req.Status
		if !next.Valid() {
			return nil, invalid("unknown status %q", next)
		}
		if !c.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("campaign %s -> %s: %w", c.Status, next, domain.ErrInvalidTransition)
		}
		c.Status = next
	}

	if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCampaign removes a campaign on behalf of the owner.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, actor, id uuid.UUID) error {
	if _, err := u.ownedCampaign(ctx, actor, id); err != nil {
		return err
	}
	return u.campaigns.DeleteCampaign(ctx, id)
}

// ListCampaignContributions returns the contributions to a campaign. Only
// the owner may see them.
func (u *CampaignUseCase) ListCampaignContributions(ctx context.Context, actor, id uuid.UUID) ([]domain.Contribution, error) {
	if _, err := u.ownedCampaign(ctx, actor, id); err != nil {
		return nil, err
	}
	list, err := u.contributions.ListContributionsByCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Contribution{}
	}
	return list, nil
}

// ListPerkTiers returns the tiers of an existing campaign.
func (u *CampaignUseCase) ListPerkTiers(ctx context.Context, campaignID uuid.UUID) ([]domain.PerkTier, error) {
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	tiers, err := u.tiers.ListPerkTiers(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if tiers == nil {
		tiers = []domain.PerkTier{}
	}
	return tiers, nil
}

// AddPerkTier adds a tier to a campaign that is still open.
func (u *CampaignUseCase) AddPerkTier(ctx context.Context, actor, campaignID uuid.UUID, in port.PerkTierInput) (*domain.PerkTier, error) {
	c, err := u.ownedCampaign(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CampaignCompleted || c.Status == domain.CampaignCancelled {
		return nil, fmt.Errorf("campaign is %s: %w", c.Status, domain.ErrConflict)
	}
	t, err := newPerkTier(in)
	if err != nil {
		return nil, err
	}
	t.CampaignID = campaignID
	if err = u.tiers.CreatePerkTier(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdatePerkTier applies a partial update to a tier. A max_sponsors of 0
// removes the cap.
func (u *CampaignUseCase) UpdatePerkTier(ctx context.Context, actor, id uuid.UUID, req port.UpdatePerkTierReq) (*domain.PerkTier, error) {
	t, err := u.ownedPerkTier(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if t.Name, err = validText("name", *req.Name, 1, 100); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if t.Description, err = validText("description", *req.Description, 0, 2000); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err = validAmount("amount", *req.Amount); err != nil {
			return nil, err
		}
		t.Amount = *req.Amount
	}
	if req.MaxSponsors != nil {
		switch n := *req.MaxSponsors; {
		case n < 0:
			return nil, invalid("max_sponsors must not be negative")
		case n == 0:
			t.MaxSponsors = nil
		case n < t.CurrentSponsors:
			return nil, fmt.Errorf("tier already has %d sponsors: %w", t.CurrentSponsors, domain.ErrConflict)
		default:
			t.MaxSponsors = &n
		}
	}
	if req.Perks != nil {
		t.Perks = cleanPerks(req.Perks)
	}
	if req.SortOrder != nil {
		t.SortOrder = *req.SortOrder
	}

	if err = u.tiers.UpdatePerkTier(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeletePerkTier removes a tier nobody has been accepted into.
func (u *CampaignUseCase) DeletePerkTier(ctx context.Context, actor, id uuid.UUID) error {
	t, err := u.ownedPerkTier(ctx, actor, id)
	if err != nil {
		return err
	}
	if t.CurrentSponsors > 0 {
		return fmt.Errorf("tier has %d sponsors: %w", t.CurrentSponsors, domain.ErrConflict)
	}
	return u.tiers.DeletePerkTier(ctx, id)
}

func (u *CampaignUseCase) ownedPerkTier(ctx context.Context, actor, id uuid.UUID) (*domain.PerkTier, error) {
	t, err := u.tiers.GetPerkTier(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if _, err = u.ownedCampaign(ctx, actor, t.CampaignID); err != nil {
		return nil, err
	}
	return t, nil
}

func newPerkTier(in port.PerkTierInput) (*domain.PerkTier, error) {
	name, err := validText("name", in.Name, 1, 100)
	if err != nil {
		return nil, err
	}
	description, err := validText("description", in.Description, 0, 2000)
	if err != nil {
		return nil, err
	}
	if err = validAmount("amount", in.Amount); err != nil {
		return nil, err
	}
	if in.MaxSponsors != nil && *in.MaxSponsors < 1 {
		return nil, invalid("max_sponsors must be at least 1")
	}
	return &domain.PerkTier{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Amount:      in.Amount,
		MaxSponsors: in.MaxSponsors,
		Perks:       cleanPerks(in.Perks),
		SortOrder:   in.SortOrder,
	}, nil
}

// cleanPerks trims perks and drops empty entries.
func cleanPerks(perks []string) []string {
	out := make([]string, 0, len(perks))
	for _, p := range perks {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
