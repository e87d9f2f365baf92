package service

import (
	"context"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo    ports.EventRepo
	tickets ports.TicketRepo
}

func NewEventService(repo ports.EventRepo, tickets ports.TicketRepo) *EventService {
	return &EventService{repo: repo, tickets: tickets}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	switch {
	case input.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case !domain.ValidEventType(input.Type):
		return nil, fmt.Errorf("%w: invalid event type %q", domain.ErrValidation, input.Type)
	case input.MaxCapacity <= 0:
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	case input.StartsAt.Before(time.Now()):
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	case !input.EndsAt.IsZero() && input.EndsAt.Before(input.StartsAt):
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Location:    input.Location,
		Organizer:   input.Organizer,
		Website:     input.Website,
		MaxCapacity: input.MaxCapacity,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booked, err := s.tickets.CountByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	available := event.MaxCapacity - booked
	if available < 0 {
		available = 0
	}

	return &domain.EventDetails{Event: *event, AvailableSpots: available}, nil
}
