package service

import (
	"context"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports"
	"github.com/google/uuid"
)

type CardService struct {
	repo ports.CardRepo
}

func NewCardService(repo ports.CardRepo) *CardService {
	return &CardService{repo: repo}
}

// Create stamps the card with the calling principal as owner. The input
// carries no owner field, so a client cannot pick one; status always
// starts as pending and only the verification process may activate it.
func (s *CardService) Create(ctx context.Context, principal domain.Principal, input domain.CreateCardInput) (*domain.DisabilityCard, error) {
	if err := validateCardInput(input.Type, input.Number, input.IssuingAuthority, input.ExpiryDate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	card := &domain.DisabilityCard{
		ID:               uuid.New().String(),
		Owner:            principal.UserID,
		Type:             input.Type,
		Status:           domain.CardStatusPending,
		Number:           input.Number,
		IssuingAuthority: input.IssuingAuthority,
		ExpiryDate:       input.ExpiryDate,
		DocumentURL:      input.DocumentURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	return card, nil
}

func (s *CardService) List(ctx context.Context, principal domain.Principal) ([]*domain.DisabilityCard, error) {
	return s.repo.ListByOwner(ctx, principal.UserID)
}

// GetByID is a scoped read: another principal's card is indistinguishable
// from a missing one.
func (s *CardService) GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.DisabilityCard, error) {
	return s.repo.GetByIDForOwner(ctx, id, principal.UserID)
}

func (s *CardService) Update(ctx context.Context, principal domain.Principal, id string, input domain.UpdateCardInput) (*domain.DisabilityCard, error) {
	if err := validateCardInput(input.Type, input.Number, input.IssuingAuthority, input.ExpiryDate); err != nil {
		return nil, err
	}

	card, err := s.authorize(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	card.Type = input.Type
	card.Number = input.Number
	card.IssuingAuthority = input.IssuingAuthority
	card.ExpiryDate = input.ExpiryDate
	card.DocumentURL = input.DocumentURL
	card.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	return card, nil
}

func (s *CardService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.authorize(ctx, principal, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, principal.UserID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	return nil
}

// ExpireOverdue moves active cards past their expiry date to expired.
// Driven by the scheduler, not by any request path.
func (s *CardService) ExpireOverdue(ctx context.Context) ([]*domain.DisabilityCard, error) {
	expired, err := s.repo.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue cards: %w", err)
	}
	return expired, nil
}

// authorize is the ownership guard for mutations: the lookup is unscoped
// on purpose, so a missing card yields NotFound while someone else's card
// yields ErrNotOwner. The caller already knows the id, so confirming
// existence here leaks nothing new. Evaluated fresh on every call.
func (s *CardService) authorize(ctx context.Context, principal domain.Principal, id string) (*domain.DisabilityCard, error) {
	card, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Owner != principal.UserID {
		return nil, domain.ErrNotOwner
	}
	return card, nil
}

func validateCardInput(t domain.CardType, number, authority string, expiry time.Time) error {
	switch {
	case !domain.ValidCardType(t):
		return fmt.Errorf("%w: invalid card type %q", domain.ErrValidation, t)
	case number == "":
		return fmt.Errorf("%w: number is required", domain.ErrValidation)
	case authority == "":
		return fmt.Errorf("%w: issuing_authority is required", domain.ErrValidation)
	case expiry.IsZero():
		return fmt.Errorf("%w: expiry_date is required", domain.ErrValidation)
	}
	return nil
}
