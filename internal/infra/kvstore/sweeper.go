package kvstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"retreat-api/internal/pkg/clock"
)

type Sweepable interface {
	Sweep(ctx context.Context, before time.Time) (int64, error)
}

// Sweeper periodically drops state older than ttl so abandoned clients do not accumulate.
type Sweeper struct {
	store    Sweepable
	clock    clock.Clock
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(store Sweepable, clk clock.Clock, ttl, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		clock:    clk,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// RunOnce removes entries last written more than ttl ago.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	return s.store.Sweep(ctx, s.clock.Now().Add(-s.ttl))
}

func (s *Sweeper) Start() {
	if s.interval <= 0 || s.ttl <= 0 {
		s.logger.Info("form state sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := s.RunOnce(ctx)
				if err != nil {
					s.logger.Warn("form state sweep failed", "error", err)
					continue
				}
				if removed > 0 {
					s.logger.Debug("form state swept", "removed", removed)
				}
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}
