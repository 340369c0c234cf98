package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IntervalWaiter pauses the poll loop between cycles.
// The delay is constant and counted from the end of the previous cycle.
type IntervalWaiter struct {
	interval time.Duration
	schedule cron.Schedule
	now      func() time.Time
	logger   *logrus.Entry
}

// NewIntervalWaiter creates a waiter for the given interval.
func NewIntervalWaiter(interval time.Duration, logger *logrus.Entry) *IntervalWaiter {
	return &IntervalWaiter{
		interval: interval,
		schedule: cron.Every(interval),
		now:      time.Now,
		logger:   logger,
	}
}

// Next returns the approximate start of the next cycle if the current one ended at t.
// cron.Every works in whole seconds, so this is for logging only; Wait pauses for the exact interval.
func (w *IntervalWaiter) Next(t time.Time) time.Time {
	return w.schedule.Next(t)
}

// Wait blocks until the next cycle is due or ctx is done.
func (w *IntervalWaiter) Wait(ctx context.Context) error {
	next := w.Next(w.now())
	w.logger.WithFields(logrus.Fields{
		"next_run": next.Format(time.RFC3339),
		"interval": w.interval.String(),
	}).Debug("Sleeping until next poll")

	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
