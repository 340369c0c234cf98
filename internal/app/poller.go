package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Fetcher returns the decoded API body for changes since cursor.
type Fetcher interface {
	Fetch(ctx context.Context, cursor int64) (any, error)
}

// Sender delivers a text message and handles its own failures.
type Sender interface {
	Notify(text string)
}

// Waiter pauses between cycles; it returns an error once ctx is done.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Poller runs fetch, validate, format and notify cycles forever.
// It owns the cursor and the last reported failure; nothing else touches them.
type Poller struct {
	fetcher Fetcher
	sender  Sender
	waiter  Waiter
	logger  *logrus.Entry
	now     func() time.Time

	cursor    int64
	lastError string
}

func NewPoller(cfg *config.AppConfig, fetcher Fetcher, sender Sender, waiter Waiter, logger *logrus.Entry) *Poller {
	return newPoller(cfg, fetcher, sender, waiter, logger, time.Now)
}

func newPoller(cfg *config.AppConfig, fetcher Fetcher, sender Sender, waiter Waiter, logger *logrus.Entry, now func() time.Time) *Poller {
	return &Poller{
		fetcher: fetcher,
		sender:  sender,
		waiter:  waiter,
		logger:  logger,
		now:     now,
		cursor:  now().Add(-cfg.LookbackWindow).Unix(),
	}
}

// Cursor returns the start of the next poll window as UNIX seconds.
func (p *Poller) Cursor() int64 { return p.cursor }

// LastError returns the last failure message sent to the chat, if any.
func (p *Poller) LastError() string { return p.lastError }

// Run polls until ctx is cancelled. Failures never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	p.logger.WithField("cursor", p.cursor).Info("Polling started")
	for {
		if err := p.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			p.handleFailure(err)
		}
		if err := p.waiter.Wait(ctx); err != nil {
			break
		}
	}
	p.logger.Info("Polling stopped")
}

// RunCycle performs one fetch-validate-format-notify pass.
// The cursor moves only when every step succeeded.
func (p *Poller) RunCycle(ctx context.Context) error {
	body, err := p.fetcher.Fetch(ctx, p.cursor)
	if err != nil {
		return err
	}

	records, err := homework.ValidateResponse(body)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		p.logger.Debug("No new homework statuses")
	} else {
		text, err := homework.FormatStatuses(records)
		if err != nil {
			return err
		}
		p.sender.Notify(text)
		p.logger.WithField("count", len(records)).Info("Homework status changes delivered")
	}

	if next := p.now().Unix(); next > p.cursor {
		p.cursor = next
	}
	p.lastError = ""
	return nil
}

func (p *Poller) handleFailure(err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	failureFields(p.logger, err).Error(message)

	if message == p.lastError {
		p.logger.Debug("Same failure as before, notification suppressed")
		return
	}
	p.sender.Notify(message)
	p.lastError = message
}

func failureFields(logger *logrus.Entry, err error) *logrus.Entry {
	var hwErr *homework.Error
	if !errors.As(err, &hwErr) {
		return logger.WithError(err)
	}
	fields := logrus.Fields{"kind": hwErr.Kind}
	if hwErr.Endpoint != "" {
		fields["endpoint"] = hwErr.Endpoint
	}
	if hwErr.StatusCode != 0 {
		fields["status_code"] = hwErr.StatusCode
	}
	if hwErr.Field != "" {
		fields["field"] = hwErr.Field
	}
	if hwErr.Value != "" {
		fields["value"] = hwErr.Value
	}
	return logger.WithError(err).WithFields(fields)
}
