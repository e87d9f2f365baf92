package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the bearer tokens the auth middleware
// resolves principals from.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates the token and returns the principal it asserts. Any
// parse or validation failure maps to ErrUnauthorized so the transport
// layer does not leak token internals.
func (m *Manager) Parse(raw string) (domain.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return domain.Principal{}, mapJWTError(err)
	}

	if c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}

	return domain.Principal{UserID: c.Subject, Email: c.Email}, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: token expired", domain.ErrUnauthorized)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: invalid signature", domain.ErrUnauthorized)
	default:
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
}
