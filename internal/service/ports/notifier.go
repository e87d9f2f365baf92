package ports

import (
	"context"

	"github.com/accesspass/accesspass/internal/domain"
)

type Notifier interface {
	NotifyTicketBooked(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	NotifyCardExpired(ctx context.Context, user *domain.User, card *domain.DisabilityCard)
}
