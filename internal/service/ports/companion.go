package ports

import (
	"context"

	"github.com/accesspass/accesspass/internal/domain"
)

type CompanionRepo interface {
	Create(ctx context.Context, companion *domain.Companion) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Companion, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Companion, error)
	GetByID(ctx context.Context, id string) (*domain.Companion, error)
	Update(ctx context.Context, companion *domain.Companion) error
	Delete(ctx context.Context, id, ownerID string) error
}
