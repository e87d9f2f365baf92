package ports

import (
	"context"

	"github.com/accesspass/accesspass/internal/domain"
)

type TicketRepo interface {
	// Create checks the event's remaining capacity and inserts the ticket
	// inside one transaction.
	Create(ctx context.Context, t *domain.Ticket) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Delete(ctx context.Context, id, ownerID string) error
	CountByEvent(ctx context.Context, eventID string) (int, error)
}
