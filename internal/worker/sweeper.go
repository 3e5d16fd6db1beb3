package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks

type abandonedProcessor interface {
	ProcessAbandoned(ctx context.Context) (int, error)
}

// Sweeper periodically scans for abandoned carts and triggers recovery emails.
type Sweeper struct {
	service  abandonedProcessor
	interval time.Duration
}

func NewSweeper(service abandonedProcessor, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &Sweeper{
		service:  service,
		interval: interval,
	}
}

// Run sweeps on a fixed schedule until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Msg("sweeper started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			sent, err := s.service.ProcessAbandoned(ctx)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("sweep failed")
				continue
			}

			if sent > 0 {
				zlog.Logger.Info().Int("sent", sent).Msg("sweep dispatched recovery emails")
			}
		}
	}
}
