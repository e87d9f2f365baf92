package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice = domain.Principal{UserID: "u1", Email: "alice@example.com"}
	bob   = domain.Principal{UserID: "u2", Email: "bob@example.com"}
)

func validCardInput() domain.CreateCardInput {
	return domain.CreateCardInput{
		Type:             domain.CardTypeMobility,
		Number:           "DC-1234",
		IssuingAuthority: "City Health Board",
		ExpiryDate:       time.Now().Add(365 * 24 * time.Hour),
	}
}

func TestCardService_Create_BindsOwnerToPrincipal(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	var persisted *domain.DisabilityCard
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, card *domain.DisabilityCard) {
		persisted = card
	}).Return(nil)

	card, err := svc.Create(context.Background(), alice, validCardInput())

	require.NoError(t, err)
	assert.Equal(t, alice.UserID, card.Owner)
	assert.Equal(t, alice.UserID, persisted.Owner)
	assert.NotEmpty(t, card.ID)
}

func TestCardService_Create_AlwaysStartsPending(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	card, err := svc.Create(context.Background(), alice, validCardInput())

	require.NoError(t, err)
	assert.Equal(t, domain.CardStatusPending, card.Status)
}

func TestCardService_Create_InvalidType(t *testing.T) {
	svc := NewCardService(nil)

	input := validCardInput()
	input.Type = "super"

	_, err := svc.Create(context.Background(), alice, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCardService_Create_MissingNumber(t *testing.T) {
	svc := NewCardService(nil)

	input := validCardInput()
	input.Number = ""

	_, err := svc.Create(context.Background(), alice, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCardService_List_ScopedToPrincipal(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	cards := []*domain.DisabilityCard{{ID: "c1", Owner: alice.UserID}}
	repo.EXPECT().ListByOwner(mock.Anything, alice.UserID).Return(cards, nil)

	result, err := svc.List(context.Background(), alice)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCardService_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	// the scoped lookup hides cards of other principals behind NotFound
	repo.EXPECT().GetByIDForOwner(mock.Anything, "c1", bob.UserID).Return(nil, domain.ErrCardNotFound)

	_, err := svc.GetByID(context.Background(), bob, "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestCardService_Update_Success(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	existing := &domain.DisabilityCard{
		ID:     "c1",
		Owner:  alice.UserID,
		Status: domain.CardStatusActive,
	}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	input := domain.UpdateCardInput(validCardInput())
	card, err := svc.Update(context.Background(), alice, "c1", input)

	require.NoError(t, err)
	assert.Equal(t, alice.UserID, card.Owner)
	assert.Equal(t, domain.CardStatusActive, card.Status) // guard never touches status
}

func TestCardService_Update_DeniedForNonOwner(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	existing := &domain.DisabilityCard{ID: "c1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)

	input := domain.UpdateCardInput(validCardInput())
	_, err := svc.Update(context.Background(), bob, "c1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCardService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCardNotFound)

	input := domain.UpdateCardInput(validCardInput())
	_, err := svc.Update(context.Background(), alice, "missing", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
	assert.NotErrorIs(t, err, domain.ErrNotOwner)
}

func TestCardService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	existing := &domain.DisabilityCard{ID: "c1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "c1", alice.UserID).Return(nil)

	err := svc.Delete(context.Background(), alice, "c1")

	require.NoError(t, err)
}

func TestCardService_Delete_DeniedForNonOwner(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	existing := &domain.DisabilityCard{ID: "c1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)

	err := svc.Delete(context.Background(), bob, "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCardService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCardNotFound)

	err := svc.Delete(context.Background(), alice, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestCardService_ExpireOverdue(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	expired := []*domain.DisabilityCard{{ID: "c1", Status: domain.CardStatusExpired}}
	repo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)

	result, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCardService_ExpireOverdue_RepoError(t *testing.T) {
	repo := mocks.NewMockCardRepo(t)
	svc := NewCardService(repo)

	repo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpireOverdue(context.Background())

	require.Error(t, err)
}
