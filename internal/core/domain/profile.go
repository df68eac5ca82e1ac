package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the kind of marketplace participant a profile represents.
type Role string

const (
	RoleAthlete Role = "ATHLETE"
	RoleTeam    Role = "TEAM"
	RoleEvent   Role = "EVENT"
	RoleSponsor Role = "SPONSOR"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAthlete, RoleTeam, RoleEvent, RoleSponsor:
		return true
	}
	return false
}

// IsTalent reports whether r may own campaigns.
func (r Role) IsTalent() bool {
	return r == RoleAthlete || r == RoleTeam || r == RoleEvent
}

// Profile is the marketplace identity of an authenticated user. The ID is
// the subject issued by the auth provider.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	Location    string    `json:"location"`
	Sport       string    `json:"sport,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
