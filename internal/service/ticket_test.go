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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type ticketFixture struct {
	tickets  *mocks.MockTicketRepo
	events   *mocks.MockEventRepo
	cards    *mocks.MockCardRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockNotifier
	svc      *TicketService
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	f := &ticketFixture{
		tickets:  mocks.NewMockTicketRepo(t),
		events:   mocks.NewMockEventRepo(t),
		cards:    mocks.NewMockCardRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	f.svc = NewTicketService(f.tickets, f.events, f.cards, f.users, f.notifier, newTestLogger(t))
	return f
}

func TestTicketService_Book_NoCard(t *testing.T) {
	f := newTicketFixture(t)

	event := &domain.Event{ID: "e1", Name: "Concert"}
	user := &domain.User{ID: alice.UserID, Email: alice.Email}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, alice.UserID).Return(user, nil)
	f.notifier.EXPECT().NotifyTicketBooked(mock.Anything, user, event, mock.Anything).Return()

	ticket, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1"})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketTypeRegular, ticket.Type)
	assert.Equal(t, alice.UserID, ticket.Owner)
	assert.Nil(t, ticket.CardID)
	assert.NotEmpty(t, ticket.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_Book_WithActiveCard(t *testing.T) {
	f := newTicketFixture(t)

	event := &domain.Event{ID: "e1", Name: "Concert"}
	card := &domain.DisabilityCard{ID: "c1", Owner: alice.UserID, Status: domain.CardStatusActive}
	user := &domain.User{ID: alice.UserID}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "c1").Return(card, nil)
	f.tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, alice.UserID).Return(user, nil)
	f.notifier.EXPECT().NotifyTicketBooked(mock.Anything, user, event, mock.Anything).Return()

	cardID := "c1"
	ticket, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketTypeAccessibility, ticket.Type)
	require.NotNil(t, ticket.CardID)
	assert.Equal(t, "c1", *ticket.CardID)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Book_CardPending(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "c1").Return(
		&domain.DisabilityCard{ID: "c1", Owner: alice.UserID, Status: domain.CardStatusPending}, nil)

	cardID := "c1"
	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardPending)
	assert.ErrorIs(t, err, domain.ErrCardNotActive)
	f.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTicketService_Book_CardExpired(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "c1").Return(
		&domain.DisabilityCard{ID: "c1", Owner: alice.UserID, Status: domain.CardStatusExpired}, nil)

	cardID := "c1"
	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardExpired)
	// pending and expired stay distinguishable
	assert.NotErrorIs(t, err, domain.ErrCardPending)
}

func TestTicketService_Book_CardSuspended(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "c1").Return(
		&domain.DisabilityCard{ID: "c1", Owner: alice.UserID, Status: domain.CardStatusSuspended}, nil)

	cardID := "c1"
	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardSuspended)
}

func TestTicketService_Book_CardOwnedByAnother(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "c1").Return(
		&domain.DisabilityCard{ID: "c1", Owner: alice.UserID, Status: domain.CardStatusActive}, nil)

	cardID := "c1"
	_, err := f.svc.Book(context.Background(), bob, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	f.tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTicketService_Book_CardNotFound(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.cards.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCardNotFound)

	cardID := "missing"
	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1", CardID: &cardID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestTicketService_Book_EventNotFound(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_Book_MissingEventID(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Book_SoldOut(t *testing.T) {
	f := newTicketFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNoAvailableSpots)

	_, err := f.svc.Book(context.Background(), alice, domain.BookTicketInput{EventID: "e1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailableSpots)
}

func TestTicketService_List_ScopedToPrincipal(t *testing.T) {
	f := newTicketFixture(t)

	tickets := []*domain.Ticket{{ID: "t1", Owner: alice.UserID}}
	f.tickets.EXPECT().ListByOwner(mock.Anything, alice.UserID).Return(tickets, nil)

	result, err := f.svc.List(context.Background(), alice)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestTicketService_GetByID_OtherOwnerLooksMissing(t *testing.T) {
	f := newTicketFixture(t)

	f.tickets.EXPECT().GetByIDForOwner(mock.Anything, "t1", bob.UserID).Return(nil, domain.ErrTicketNotFound)

	_, err := f.svc.GetByID(context.Background(), bob, "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_Cancel_Success(t *testing.T) {
	f := newTicketFixture(t)

	ticket := &domain.Ticket{ID: "t1", Owner: alice.UserID}
	f.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)
	f.tickets.EXPECT().Delete(mock.Anything, "t1", alice.UserID).Return(nil)

	err := f.svc.Cancel(context.Background(), alice, "t1")

	require.NoError(t, err)
}

func TestTicketService_Cancel_DeniedForNonOwner(t *testing.T) {
	f := newTicketFixture(t)

	ticket := &domain.Ticket{ID: "t1", Owner: alice.UserID}
	f.tickets.EXPECT().GetByID(mock.Anything, "t1").Return(ticket, nil)

	err := f.svc.Cancel(context.Background(), bob, "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	f.tickets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestTicketService_Cancel_NotFound(t *testing.T) {
	f := newTicketFixture(t)

	f.tickets.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	err := f.svc.Cancel(context.Background(), alice, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
