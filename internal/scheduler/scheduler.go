// Package scheduler runs the daily announcement job at a configured
// local time.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

func New(log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log,
	}
}

// ScheduleDaily registers job to run every day at notifyTime (HH:MM).
func (s *Scheduler) ScheduleDaily(notifyTime string, job func()) error {
	spec, err := cronSpec(notifyTime)
	if err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("failed to schedule daily job: %w", err)
	}

	s.log.Info("scheduled daily announcement", "time", notifyTime)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// cronSpec converts an HH:MM time of day to a daily cron expression.
func cronSpec(notifyTime string) (string, error) {
	t, err := time.Parse("15:04", notifyTime)
	if err != nil {
		return "", fmt.Errorf("invalid notification time %q, expected HH:MM: %w", notifyTime, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}
