package port

import (
	"context"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
)

// Repositories are outbound ports in hexagonal architecture. Lookups by id
// return nil and no error when the row does not exist. Implementations must
// be safe for concurrent use.

// ProfileRepository persists marketplace profiles.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	// UpsertProfile inserts or updates p and refreshes its timestamps.
	UpsertProfile(ctx context.Context, p *domain.Profile) error
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CreateCampaign stores the campaign and its perk tiers in a single
	// transaction and returns the stored tiers.
	CreateCampaign(ctx context.Context, c *domain.Campaign, tiers []domain.PerkTier) ([]domain.PerkTier, error)
	// UpdateCampaign returns domain.ErrConflict when the row changed since
	// it was read. Closing a campaign rejects its pending requests.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes a campaign that never accepted a sponsorship.
	// It returns domain.ErrConflict otherwise.
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	// ReconcileFunding recomputes current_funding from contributions and
	// returns the number of campaigns whose value changed.
	ReconcileFunding(ctx context.Context) (int64, error)
}

// PerkTierRepository persists perk tiers.
type PerkTierRepository interface {
	ListPerkTiers(ctx context.Context, campaignID uuid.UUID) ([]domain.PerkTier, error)
	GetPerkTier(ctx context.Context, id uuid.UUID) (*domain.PerkTier, error)
	CreatePerkTier(ctx context.Context, t *domain.PerkTier) error
	// UpdatePerkTier returns domain.ErrConflict when the new cap is below
	// the number of sponsors already accepted.
	UpdatePerkTier(ctx context.Context, t *domain.PerkTier) error
	// DeletePerkTier returns domain.ErrConflict when the tier has sponsors.
	DeletePerkTier(ctx context.Context, id uuid.UUID) error
}

// SponsorshipRepository persists sponsorship requests and applies their
// state transitions atomically.
type SponsorshipRepository interface {
	CreateSponsorshipRequest(ctx context.Context, r *domain.SponsorshipRequest) error
	GetSponsorshipRequest(ctx context.Context, id uuid.UUID) (*domain.SponsorshipRequest, error)
	ListSponsorshipRequests(ctx context.Context, f domain.SponsorshipFilter) ([]domain.SponsorshipRequest, error)
	// AcceptSponsorshipRequest releases escrow, bumps the perk tier sponsor
	// count, adds the amount to the campaign funding and records a
	// contribution in one transaction. It returns
	// domain.ErrInvalidTransition if the request is no longer pending and
	// domain.ErrTierFull if the tier reached its cap.
	AcceptSponsorshipRequest(ctx context.Context, id uuid.UUID) (*domain.SponsorshipRequest, error)
	// CloseSponsorshipRequest moves a pending request to REJECTED or
	// CANCELLED and returns the escrow.
	CloseSponsorshipRequest(ctx context.Context, id uuid.UUID, status domain.SponsorshipStatus) (*domain.SponsorshipRequest, error)
}

// FavoriteRepository persists favorites.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteCampaign, error)
	// AddFavorite reports whether a new row was created.
	AddFavorite(ctx context.Context, userID, campaignID uuid.UUID) (bool, error)
	RemoveFavorite(ctx context.Context, userID, campaignID uuid.UUID) error
}

// ContributionRepository reads sponsor contributions.
type ContributionRepository interface {
	ListContributionsBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]domain.Contribution, error)
	ListContributionsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Contribution, error)
}

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	CampaignTotals(ctx context.Context, ownerID uuid.UUID) (domain.CampaignTotals, error)
	ContributionTotals(ctx context.Context, sponsorID uuid.UUID) (domain.ContributionTotals, error)
	CountSponsorshipRequests(ctx context.Context, f domain.SponsorshipFilter) (int64, error)
	CountFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
}
