package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type holdSweeper interface {
	SweepExpired(ctx context.Context) ([]domain.ExpiredHold, error)
}

// Scheduler drives the recurring expiry sweep. A missed tick is harmless:
// expiry is judged against absolute timestamps, so the next tick reclaims
// everything that is overdue.
type Scheduler struct {
	sweeper  holdSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper holdSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweep scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reclaimed, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired holds",
			logger.String("error", err.Error()),
		)
	}

	for _, hold := range reclaimed {
		s.logger.Info("hold expired",
			logger.String("event_id", hold.EventID),
			logger.String("user_id", hold.UserID),
			logger.String("pricing_tier", hold.PricingTier),
		)
	}
}
