package usecase

import (
	"context"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/services/rides"
)

// SweepDeparted deletes active rides whose departure has passed. No money
// moves: passengers travelled, or chose not to.
func (uc *rideUC) SweepDeparted(ctx context.Context) (int, error) {
	departed, err := uc.registry.ListDeparted(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, ride := range departed {
		rideID := ride.ID.String()
		expired, err := uc.registry.ExpireRide(ctx, rideID)
		if err != nil {
			logger.Warn("Failed to expire departed ride", logger.RideID(rideID), logger.Err(err))
			continue
		}
		if expired.IsActive() {
			continue
		}
		swept++

		if uc.chat != nil {
			if err := uc.chat.Retire(ctx, rideID); err != nil {
				logger.Warn("Failed to retire chat room", logger.RideID(rideID), logger.Err(err))
			}
		}
	}

	if swept > 0 {
		logger.Info("Departed rides swept", logger.Int("count", swept))
	}
	return swept, nil
}

// Sweeper runs SweepDeparted on a fixed interval until its context ends
type Sweeper struct {
	uc       rides.RideUC
	interval time.Duration
}

func NewSweeper(uc rides.RideUC, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{uc: uc, interval: interval}
}

// Run blocks until ctx is done
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Departed ride sweeper started", logger.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Departed ride sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.uc.SweepDeparted(ctx); err != nil {
				logger.Error("Departed ride sweep failed", logger.Err(err))
			}
		}
	}
}
