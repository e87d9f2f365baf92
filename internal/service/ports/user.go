package ports

import (
	"context"

	"github.com/accesspass/accesspass/internal/domain"
)

type UserRepo interface {
	// Create persists the credential account together with its profile
	// fields as a single statement.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
