// Package housekeeping runs periodic retention tasks decoupled from the
// read/write path. Today that is a single job: pruning password-reset tokens
// that are used or expired, which would otherwise accumulate forever.
package housekeeping

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/api/metrics"
	"github.com/assetbridge/investment-platform/internal/core/ports"
)

// Sweeper prunes stale reset tokens on a cron schedule.
type Sweeper struct {
	tokens   ports.ResetTokenRepository
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewSweeper creates a Sweeper. The schedule uses cron syntax or a descriptor
// like "@hourly".
func NewSweeper(tokens ports.ResetTokenRepository, schedule string, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		tokens:   tokens,
		schedule: schedule,
		cron:     cron.New(),
		log:      log,
	}
}

// Start registers the sweep job and starts the cron scheduler. The scheduler
// stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.Sweep(ctx) }); err != nil {
		return err
	}
	s.cron.Start()

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()
	return nil
}

// Sweep runs one pruning pass. Failures are logged and retried on the next
// tick; a sweep never disturbs the serving path.
func (s *Sweeper) Sweep(ctx context.Context) {
	pruned, err := s.tokens.PruneExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("reset token sweep failed")
		return
	}
	if pruned > 0 {
		metrics.ResetTokensPrunedTotal.Add(float64(pruned))
		s.log.Info().Int("pruned", pruned).Msg("reset tokens pruned")
	}
}
