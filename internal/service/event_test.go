package service

import (
	"context"
	"testing"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:        "Summer Concert",
		Type:        domain.EventTypeConcert,
		StartsAt:    time.Now().Add(48 * time.Hour),
		Location:    "Main Hall",
		Organizer:   "City Arts",
		MaxCapacity: 100,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, "Summer Concert", event.Name)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_InvalidType(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := validEventInput()
	input.Type = "rave"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_NonPositiveCapacity(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := validEventInput()
	input.MaxCapacity = 0

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_StartsInThePast(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := validEventInput()
	input.StartsAt = time.Now().Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_EndsBeforeStart(t *testing.T) {
	svc := NewEventService(nil, nil)

	input := validEventInput()
	input.EndsAt = input.StartsAt.Add(-time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_GetDetails_AvailableSpots(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	tickets := mocks.NewMockTicketRepo(t)
	svc := NewEventService(repo, tickets)

	event := &domain.Event{ID: "e1", Name: "Concert", MaxCapacity: 100}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	tickets.EXPECT().CountByEvent(mock.Anything, "e1").Return(30, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 70, details.AvailableSpots)
	assert.Equal(t, "e1", details.Event.ID)
}

func TestEventService_GetDetails_NeverNegative(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	tickets := mocks.NewMockTicketRepo(t)
	svc := NewEventService(repo, tickets)

	event := &domain.Event{ID: "e1", MaxCapacity: 10}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	tickets.EXPECT().CountByEvent(mock.Anything, "e1").Return(12, nil)

	details, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 0, details.AvailableSpots)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, nil)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
