package ports

import (
	"context"

	"github.com/accesspass/accesspass/internal/domain"
)

type CardRepo interface {
	Create(ctx context.Context, card *domain.DisabilityCard) error

	// ListByOwner and GetByIDForOwner are the scoped reads: the query
	// conjoins the owner predicate, so another principal's card behaves
	// exactly like a missing one.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.DisabilityCard, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.DisabilityCard, error)

	// GetByID is the unscoped lookup the ownership guard and the
	// eligibility gate use to inspect the owner reference.
	GetByID(ctx context.Context, id string) (*domain.DisabilityCard, error)

	Update(ctx context.Context, card *domain.DisabilityCard) error
	Delete(ctx context.Context, id, ownerID string) error
	ExpireOverdue(ctx context.Context) ([]*domain.DisabilityCard, error)
}
