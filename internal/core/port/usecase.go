package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sponsorhub/internal/core/domain"
)

// The use case interfaces are the primary ports into the application
// domain. Every mutating operation takes the acting user id as reported by
// the auth provider. Errors are domain sentinels (possibly wrapped) so the
// HTTP adapter can map them with errors.Is.

// ProfileUseCase manages the caller's marketplace profile.
type ProfileUseCase interface {
	GetMyProfile(ctx context.Context, actor uuid.UUID) (*domain.Profile, error)
	// UpsertMyProfile creates the caller's profile or updates it. The role
	// is fixed once the profile exists.
	UpsertMyProfile(ctx context.Context, actor uuid.UUID, req UpsertProfileReq) (*domain.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// CampaignUseCase manages campaigns and their perk tiers.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, actor uuid.UUID, req CreateCampaignReq) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, actor, id uuid.UUID, req UpdateCampaignReq) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, actor, id uuid.UUID) error
	ListCampaignContributions(ctx context.Context, actor, id uuid.UUID) ([]domain.Contribution, error)

	ListPerkTiers(ctx context.Context, campaignID uuid.UUID) ([]domain.PerkTier, error)
	AddPerkTier(ctx context.Context, actor, campaignID uuid.UUID, in PerkTierInput) (*domain.PerkTier, error)
	UpdatePerkTier(ctx context.Context, actor, id uuid.UUID, req UpdatePerkTierReq) (*domain.PerkTier, error)
	DeletePerkTier(ctx context.Context, actor, id uuid.UUID) error
}

// SponsorshipUseCase drives sponsorship requests through their lifecycle.
type SponsorshipUseCase interface {
	CreateRequest(ctx context.Context, actor uuid.UUID, req CreateSponsorshipReq) (*domain.SponsorshipRequest, error)
	// GetRequest returns domain.ErrNotFound to callers that are neither the
	// sponsor nor the campaign owner.
	GetRequest(ctx context.Context, actor, id uuid.UUID) (*domain.SponsorshipRequest, error)
	ListRequests(ctx context.Context, actor uuid.UUID, req ListSponsorshipsReq) ([]domain.SponsorshipRequest, error)
	// UpdateRequestStatus accepts or rejects a request on behalf of the
	// campaign owner, or cancels it on behalf of the sponsor.
	UpdateRequestStatus(ctx context.Context, actor, id uuid.UUID, status domain.SponsorshipStatus) (*domain.SponsorshipRequest, error)
	ListMyContributions(ctx context.Context, actor uuid.UUID) ([]domain.Contribution, error)
}

// FavoriteUseCase manages the caller's favorites.
type FavoriteUseCase interface {
	ListFavorites(ctx context.Context, actor uuid.UUID) ([]domain.FavoriteCampaign, error)
	// AddFavorite reports whether the favorite was newly created.
	AddFavorite(ctx context.Context, actor, campaignID uuid.UUID) (bool, error)
	RemoveFavorite(ctx context.Context, actor, campaignID uuid.UUID) error
}

// DashboardUseCase summarises activity for the caller.
type DashboardUseCase interface {
	GetDashboard(ctx context.Context, actor uuid.UUID) (*domain.Dashboard, error)
}

// UpsertProfileReq is the editable part of a profile.
type UpsertProfileReq struct {
	Role        domain.Role `json:"role"`
	DisplayName string      `json:"display_name"`
	Bio         string      `json:"bio"`
	AvatarURL   string      `json:"avatar_url"`
	Location    string      `json:"location"`
	Sport       string      `json:"sport"`
	CompanyName string      `json:"company_name"`
	Website     string      `json:"website"`
}

// PerkTierInput describes a perk tier to create.
type PerkTierInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	MaxSponsors *int            `json:"max_sponsors"`
	Perks       []string        `json:"perks"`
	SortOrder   int             `json:"sort_order"`
}

// CreateCampaignReq describes a new campaign. Status defaults to ACTIVE and
// StartDate to now.
type CreateCampaignReq struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Sport       string                `json:"sport"`
	ImageURL    string                `json:"image_url"`
	GoalAmount  decimal.Decimal       `json:"goal_amount"`
	StartDate   *time.Time            `json:"start_date"`
	EndDate     *time.Time            `json:"end_date"`
	Status      domain.CampaignStatus `json:"status"`
	PerkTiers   []PerkTierInput       `json:"perk_tiers"`
}

// UpdateCampaignReq is a partial update; nil fields are left unchanged.
type UpdateCampaignReq struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Sport       *string                `json:"sport"`
	ImageURL    *string                `json:"image_url"`
	GoalAmount  *decimal.Decimal       `json:"goal_amount"`
	EndDate     *time.Time             `json:"end_date"`
	Status      *domain.CampaignStatus `json:"status"`
}

// UpdatePerkTierReq is a partial update; nil fields are left unchanged.
type UpdatePerkTierReq struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	MaxSponsors *int             `json:"max_sponsors"`
	Perks       []string         `json:"perks"`
	SortOrder   *int             `json:"sort_order"`
}

// CreateSponsorshipReq is a sponsor's offer.
type CreateSponsorshipReq struct {
	CampaignID uuid.UUID       `json:"campaign_id"`
	PerkTierID *uuid.UUID      `json:"perk_tier_id"`
	Amount     decimal.Decimal `json:"amount"`
	Message    string          `json:"message"`
}

// Listing perspectives for ListSponsorshipsReq.As.
const (
	AsSponsor = "sponsor"
	AsTalent  = "talent"
)

// ListSponsorshipsReq selects which side of the requests to list. An empty
// As picks the side matching the caller's role.
type ListSponsorshipsReq struct {
	As         string
	Status     domain.SponsorshipStatus
	CampaignID *uuid.UUID
}

// TokenVerifier resolves a bearer token issued by the auth provider into the
// calling principal. Invalid or expired tokens yield domain.ErrUnauthorized.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Principal, error)
}
