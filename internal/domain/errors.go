package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrCardNotFound      = errors.New("disability card not found")
	ErrCompanionNotFound = errors.New("companion not found")
	ErrTicketNotFound    = errors.New("ticket not found")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotOwner means the resource exists but belongs to another
	// principal. Kept distinct from the not-found sentinels: mutation
	// attempts on a known id may confirm existence, scoped reads must not.
	ErrNotOwner = errors.New("not the owner of this resource")
)

var (
	ErrCardNotActive = errors.New("disability card is not active")

	// Wrapped members of the ErrCardNotActive family, so callers can match
	// the family with errors.Is(err, ErrCardNotActive) or the exact state
	// for differentiated remediation guidance.
	ErrCardPending   = fmt.Errorf("%w: verification is pending", ErrCardNotActive)
	ErrCardExpired   = fmt.Errorf("%w: card has expired", ErrCardNotActive)
	ErrCardSuspended = fmt.Errorf("%w: card is suspended", ErrCardNotActive)
)

var (
	ErrNoAvailableSpots = errors.New("no available spots")
	ErrEmailTaken       = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

// CardStateError maps a card status to the matching ineligibility sentinel.
func CardStateError(status CardStatus) error {
	switch status {
	case CardStatusPending:
		return ErrCardPending
	case CardStatusExpired:
		return ErrCardExpired
	case CardStatusSuspended:
		return ErrCardSuspended
	default:
		return fmt.Errorf("%w: status is %s", ErrCardNotActive, status)
	}
}
