package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// ProfileUseCase implements port.ProfileUseCase.
type ProfileUseCase struct {
	profiles port.ProfileRepository
}

// NewProfileUseCase creates a new usecase with the provided repository.
func NewProfileUseCase(profiles port.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// GetMyProfile returns the caller's profile.
func (u *ProfileUseCase) GetMyProfile(ctx context.Context, actor uuid.UUID) (*domain.Profile, error) {
	return u.GetProfile(ctx, actor)
}

// GetProfile returns any profile by id.
func (u *ProfileUseCase) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// UpsertMyProfile creates or updates the caller's profile. The role must be
// given on creation; afterwards it may be repeated but not changed.
func (u *ProfileUseCase) UpsertMyProfile(ctx context.Context, actor uuid.UUID, req port.UpsertProfileReq) (*domain.Profile, error) {
	existing, err := u.profiles.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}

	role := req.Role
	switch {
	case existing == nil && role == "":
		return nil, invalid("role is required")
	case existing == nil && !role.Valid():
		return nil, invalid("unknown role %q", role)
	case existing != nil && role != "" && role != existing.Role:
		return nil, fmt.Errorf("role cannot be changed from %s: %w", existing.Role, domain.ErrConflict)
	case existing != nil:
		role = existing.Role
	}

	name, err := validText("display_name", req.DisplayName, 1, 100)
	if err != nil {
		return nil, err
	}
	bio, err := validText("bio", req.Bio, 0, 2000)
	if err != nil {
		return nil, err
	}

	p := &domain.Profile{
		ID:          actor,
		Role:        role,
		DisplayName: name,
		Bio:         bio,
		AvatarURL:   req.AvatarURL,
		Location:    req.Location,
	}
	// talent and sponsor fields are exclusive
	if role.IsTalent() {
		p.Sport = req.Sport
	} else {
		p.CompanyName = req.CompanyName
		p.Website = req.Website
	}

	if err = u.profiles.UpsertProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
