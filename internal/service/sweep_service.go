package service

import (
	"context"
	"fmt"
	"time"

	"recharge-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// SweepConfig controls the stale-order reconciliation pass.
type SweepConfig struct {
	PendingAge time.Duration // how long a PENDING order may live before it is flagged
	BatchSize  int
}

// SweepServiceImpl surfaces PENDING orders the gateway never resolved. The
// pass is observational: it logs each stale order for operators and mutates
// nothing. Expiring or cancelling an order is a separate concern outside
// this reconciliation loop.
type SweepServiceImpl struct {
	orderRepo ports.OrderRepository
	cfg       SweepConfig
	log       zerolog.Logger
}

// NewSweepService creates a new SweepServiceImpl.
func NewSweepService(orderRepo ports.OrderRepository, cfg SweepConfig, log zerolog.Logger) *SweepServiceImpl {
	return &SweepServiceImpl{orderRepo: orderRepo, cfg: cfg, log: log}
}

// Run performs one reconciliation pass and returns the number of stale
// orders flagged.
func (s *SweepServiceImpl) Run(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-s.cfg.PendingAge)
	stale, err := s.orderRepo.ListPendingOlderThan(ctx, cutoff, s.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("list stale orders: %w", err)
	}

	for _, order := range stale {
		s.log.Warn().
			Str("order_id", order.ID.String()).
			Str("channel", order.Channel).
			Dur("age", now.Sub(order.CreatedAt)).
			Msg("order pending past threshold")
	}

	if len(stale) > 0 {
		s.log.Info().Int("flagged", len(stale)).Time("cutoff", cutoff).Msg("stale orders flagged")
	}
	return len(stale), nil
}
