package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/accesspass/accesspass/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_ExpiresAndNotifies(t *testing.T) {
	cards := mocks.NewMockCardExpirer(t)
	users := mocks.NewMockUserGetter(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	log := newTestLogger(t)

	s := New(cards, users, notifier, 50*time.Millisecond, log)

	card := &domain.DisabilityCard{ID: "c1", Owner: "u1", Status: domain.CardStatusExpired}
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	cards.EXPECT().ExpireOverdue(mock.Anything).Return([]*domain.DisabilityCard{card}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyCardExpired(mock.Anything, user, card).Return()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(cards.Calls), 1)
}

func TestScheduler_Tick_HandlesSweepError(t *testing.T) {
	cards := mocks.NewMockCardExpirer(t)
	users := mocks.NewMockUserGetter(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	log := newTestLogger(t)

	s := New(cards, users, notifier, 50*time.Millisecond, log)

	cards.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(cards.Calls), 1)
	notifier.AssertNotCalled(t, "NotifyCardExpired", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduler_Tick_SkipsUnknownOwner(t *testing.T) {
	cards := mocks.NewMockCardExpirer(t)
	users := mocks.NewMockUserGetter(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	log := newTestLogger(t)

	s := New(cards, users, notifier, 50*time.Millisecond, log)

	card := &domain.DisabilityCard{ID: "c1", Owner: "u-gone"}
	cards.EXPECT().ExpireOverdue(mock.Anything).Return([]*domain.DisabilityCard{card}, nil)
	users.EXPECT().GetByID(mock.Anything, "u-gone").Return(nil, domain.ErrUserNotFound)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	notifier.AssertNotCalled(t, "NotifyCardExpired", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	cards := mocks.NewMockCardExpirer(t)
	users := mocks.NewMockUserGetter(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	log := newTestLogger(t)

	s := New(cards, users, notifier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	cards := mocks.NewMockCardExpirer(t)
	users := mocks.NewMockUserGetter(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	log := newTestLogger(t)

	s := New(cards, users, notifier, 30*time.Millisecond, log)

	cards.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(cards.Calls), 3)
}
