package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// maxAmount is the exclusive upper bound of a NUMERIC(12,2) column.
var maxAmount = decimal.New(1, 10)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// validAmount checks that a is a positive amount with at most two decimal
// places that fits the database column.
func validAmount(field string, a decimal.Decimal) error {
	switch {
	case !a.IsPositive():
		return invalid("%s must be greater than 0", field)
	case !a.Equal(a.Round(2)):
		return invalid("%s must have at most 2 decimal places", field)
	case a.GreaterThanOrEqual(maxAmount):
		return invalid("%s is too large", field)
	}
	return nil
}

// validText trims s and checks its length in runes.
func validText(field, s string, minLen, maxLen int) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minLen {
		if minLen == 1 {
			return "", invalid("%s is required", field)
		}
		return "", invalid("%s must be at least %d characters", field, minLen)
	}
	if n > maxLen {
		return "", invalid("%s must be at most %d characters", field, maxLen)
	}
	return s, nil
}

// requireProfile loads the actor's profile and fails with
// domain.ErrProfileRequired when there is none.
func requireProfile(ctx context.Context, profiles port.ProfileRepository, actor uuid.UUID) (*domain.Profile, error) {
	p, err := profiles.GetProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProfileRequired
	}
	return p, nil
}
