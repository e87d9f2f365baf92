package service

import (
	"context"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type TicketService struct {
	tickets  ports.TicketRepo
	events   ports.EventRepo
	cards    ports.CardRepo
	users    ports.UserRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewTicketService(
	tickets ports.TicketRepo,
	events ports.EventRepo,
	cards ports.CardRepo,
	users ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		tickets:  tickets,
		events:   events,
		cards:    cards,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Book validates eligibility and creates the ticket. The eligibility gate
// runs strictly before the insert and is re-evaluated on every booking,
// never cached: card status can change between requests.
func (s *TicketService) Book(ctx context.Context, principal domain.Principal, input domain.BookTicketInput) (*domain.Ticket, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	ticketType := domain.TicketTypeRegular
	if input.CardID != nil {
		if err := s.validateEligibility(ctx, principal, *input.CardID); err != nil {
			return nil, err
		}
		ticketType = domain.TicketTypeAccessibility
	}

	ticket := &domain.Ticket{
		ID:        uuid.New().String(),
		Owner:     principal.UserID,
		EventID:   event.ID,
		CardID:    input.CardID,
		Type:      ticketType,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.logger.Info("ticket booked",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", principal.UserID),
		logger.String("type", string(ticket.Type)),
	)

	if user, err := s.users.GetByID(ctx, principal.UserID); err == nil {
		go s.notifier.NotifyTicketBooked(context.WithoutCancel(ctx), user, event, ticket)
	}

	return ticket, nil
}

func (s *TicketService) List(ctx context.Context, principal domain.Principal) ([]*domain.Ticket, error) {
	return s.tickets.ListByOwner(ctx, principal.UserID)
}

func (s *TicketService) GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.Ticket, error) {
	return s.tickets.GetByIDForOwner(ctx, id, principal.UserID)
}

// Cancel deletes a ticket after the ownership guard confirms the caller
// owns it.
func (s *TicketService) Cancel(ctx context.Context, principal domain.Principal, id string) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket.Owner != principal.UserID {
		return domain.ErrNotOwner
	}

	if err := s.tickets.Delete(ctx, id, principal.UserID); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", id),
		logger.String("user_id", principal.UserID),
	)

	return nil
}

// validateEligibility is the gate in front of accessibility bookings: the
// referenced card must exist, belong to the booking principal, and be
// active. Each failure surfaces a distinct reason so the client can point
// the user at the right remediation.
func (s *TicketService) validateEligibility(ctx context.Context, principal domain.Principal, cardID string) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return fmt.Errorf("check card: %w", err)
	}
	if card.Owner != principal.UserID {
		return domain.ErrNotOwner
	}
	if card.Status != domain.CardStatusActive {
		return domain.CardStateError(card.Status)
	}
	return nil
}
