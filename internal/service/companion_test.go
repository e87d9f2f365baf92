package service

import (
	"context"
	"testing"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCompanionInput() domain.CreateCompanionInput {
	return domain.CreateCompanionInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Relation:  "caregiver",
	}
}

func TestCompanionService_Create_BindsOwnerToPrincipal(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	var persisted *domain.Companion
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, companion *domain.Companion) {
		persisted = companion
	}).Return(nil)

	companion, err := svc.Create(context.Background(), alice, validCompanionInput())

	require.NoError(t, err)
	assert.Equal(t, alice.UserID, companion.Owner)
	assert.Equal(t, alice.UserID, persisted.Owner)
}

func TestCompanionService_Create_MissingRelation(t *testing.T) {
	svc := NewCompanionService(nil)

	input := validCompanionInput()
	input.Relation = ""

	_, err := svc.Create(context.Background(), alice, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompanionService_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	repo.EXPECT().GetByIDForOwner(mock.Anything, "cp1", bob.UserID).Return(nil, domain.ErrCompanionNotFound)

	_, err := svc.GetByID(context.Background(), bob, "cp1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompanionNotFound)
}

func TestCompanionService_Update_DeniedForNonOwner(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	existing := &domain.Companion{ID: "cp1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "cp1").Return(existing, nil)

	input := domain.UpdateCompanionInput(validCompanionInput())
	_, err := svc.Update(context.Background(), bob, "cp1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompanionService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCompanionNotFound)

	input := domain.UpdateCompanionInput(validCompanionInput())
	_, err := svc.Update(context.Background(), alice, "missing", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompanionNotFound)
}

func TestCompanionService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	existing := &domain.Companion{ID: "cp1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "cp1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "cp1", alice.UserID).Return(nil)

	err := svc.Delete(context.Background(), alice, "cp1")

	require.NoError(t, err)
}

func TestCompanionService_Delete_DeniedForNonOwner(t *testing.T) {
	repo := mocks.NewMockCompanionRepo(t)
	svc := NewCompanionService(repo)

	existing := &domain.Companion{ID: "cp1", Owner: alice.UserID}
	repo.EXPECT().GetByID(mock.Anything, "cp1").Return(existing, nil)

	err := svc.Delete(context.Background(), bob, "cp1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
