package domain

import "github.com/google/uuid"

// Principal is the authenticated caller of a request as reported by the
// auth provider.
type Principal struct {
	UserID uuid.UUID
	Email  string
}
