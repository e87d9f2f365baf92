package service

import (
	"context"
	"fmt"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports"
	"github.com/google/uuid"
)

type CompanionService struct {
	repo ports.CompanionRepo
}

func NewCompanionService(repo ports.CompanionRepo) *CompanionService {
	return &CompanionService{repo: repo}
}

func (s *CompanionService) Create(ctx context.Context, principal domain.Principal, input domain.CreateCompanionInput) (*domain.Companion, error) {
	if err := validateCompanionInput(input.FirstName, input.LastName, input.Relation); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	companion := &domain.Companion{
		ID:          uuid.New().String(),
		Owner:       principal.UserID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Relation:    input.Relation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, companion); err != nil {
		return nil, fmt.Errorf("create companion: %w", err)
	}

	return companion, nil
}

func (s *CompanionService) List(ctx context.Context, principal domain.Principal) ([]*domain.Companion, error) {
	return s.repo.ListByOwner(ctx, principal.UserID)
}

func (s *CompanionService) GetByID(ctx context.Context, principal domain.Principal, id string) (*domain.Companion, error) {
	return s.repo.GetByIDForOwner(ctx, id, principal.UserID)
}

func (s *CompanionService) Update(ctx context.Context, principal domain.Principal, id string, input domain.UpdateCompanionInput) (*domain.Companion, error) {
	if err := validateCompanionInput(input.FirstName, input.LastName, input.Relation); err != nil {
		return nil, err
	}

	companion, err := s.authorize(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	companion.FirstName = input.FirstName
	companion.LastName = input.LastName
	companion.PhoneNumber = input.PhoneNumber
	companion.Relation = input.Relation
	companion.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, companion); err != nil {
		return nil, fmt.Errorf("update companion: %w", err)
	}

	return companion, nil
}

func (s *CompanionService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.authorize(ctx, principal, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, principal.UserID); err != nil {
		return fmt.Errorf("delete companion: %w", err)
	}

	return nil
}

func (s *CompanionService) authorize(ctx context.Context, principal domain.Principal, id string) (*domain.Companion, error) {
	companion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if companion.Owner != principal.UserID {
		return nil, domain.ErrNotOwner
	}
	return companion, nil
}

func validateCompanionInput(first, last, relation string) error {
	switch {
	case first == "":
		return fmt.Errorf("%w: first_name is required", domain.ErrValidation)
	case last == "":
		return fmt.Errorf("%w: last_name is required", domain.ErrValidation)
	case relation == "":
		return fmt.Errorf("%w: relation is required", domain.ErrValidation)
	}
	return nil
}
