package scheduler

import (
	"context"
	"time"

	"github.com/accesspass/accesspass/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type cardExpirer interface {
	ExpireOverdue(ctx context.Context) ([]*domain.DisabilityCard, error)
}

type userGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type expiryNotifier interface {
	NotifyCardExpired(ctx context.Context, user *domain.User, card *domain.DisabilityCard)
}

// Scheduler periodically sweeps disability cards whose expiry date has
// passed and notifies their owners. This is the only in-process writer of
// card status; activation stays with the external verification process.
type Scheduler struct {
	cards    cardExpirer
	users    userGetter
	notifier expiryNotifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	cards cardExpirer,
	users userGetter,
	notifier expiryNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		cards:    cards,
		users:    users,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("card expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("card expiry scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.cards.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue cards",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, card := range expired {
		s.logger.Info("card expired",
			logger.String("card_id", card.ID),
			logger.String("user_id", card.Owner),
		)

		user, err := s.users.GetByID(ctx, card.Owner)
		if err != nil {
			s.logger.Error("failed to get card owner for notification",
				logger.String("user_id", card.Owner),
			)
			continue
		}

		s.notifier.NotifyCardExpired(ctx, user, card)
	}
}
