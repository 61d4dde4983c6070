// Package scheduler triggers the daily tournament run.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	tournamentModel "github.com/dailygator/dailygator/internal/tournament/model"
	tournamentService "github.com/dailygator/dailygator/internal/tournament/service"
)

// Scheduler runs the tournament once per UTC day: immediately on startup
// (catching up the current day) and then shortly after every UTC midnight.
// The persistence-layer duplicate guard makes overlapping triggers safe, so
// the scheduler can coexist with the manual run endpoint and with other
// instances.
type Scheduler struct {
	tournament tournamentService.Service
	logger     *zap.SugaredLogger

	// startupDelay is how long past midnight the trigger fires, leaving a
	// margin for clock skew around the date boundary.
	startupDelay time.Duration
	now          func() time.Time
}

// New creates a new scheduler instance.
func New(tournament tournamentService.Service, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		tournament:   tournament,
		logger:       logger,
		startupDelay: time.Minute,
		now:          time.Now,
	}
}

// Run blocks until ctx is cancelled, triggering one tournament per UTC day.
func (s *Scheduler) Run(ctx context.Context) {
	s.runOnce(ctx)

	for {
		wait := s.untilNextTrigger()
		s.logger.Debugw("scheduler sleeping", "until_next_run", wait)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Infow("scheduler stopped")
			return
		case <-timer.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce triggers the tournament for the current UTC date. A bracket that
// already exists is normal (manual trigger or another instance got there
// first), everything else is logged and retried at the next boundary.
func (s *Scheduler) runOnce(ctx context.Context) {
	date := s.now().UTC().Format(tournamentModel.DateFormat)

	result, err := s.tournament.RunForDate(ctx, date)
	if err != nil {
		if errors.Is(err, tournamentModel.ErrAlreadyRan) {
			s.logger.Debugw("tournament already complete", "date", date)
			return
		}
		s.logger.Errorw("scheduled tournament run failed", "date", date, "error", err)
		return
	}

	s.logger.Infow("scheduled tournament run complete",
		"date", date,
		"champion", result.Champion.Name,
	)
}

// untilNextTrigger returns the duration until startupDelay past the next
// UTC midnight.
func (s *Scheduler) untilNextTrigger() time.Duration {
	now := s.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 1).
		Add(s.startupDelay)
	return next.Sub(now)
}
