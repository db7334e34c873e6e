package jobs

import (
	"context"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultQuoteExpirySchedule runs the expiry sweep at the top of every minute.
const DefaultQuoteExpirySchedule = "0 * * * * *"

type quoteExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireQuotesCommand) (int, error)
}

// QuoteExpiryJob marks Open quotes whose deadline has passed as Expired.
type QuoteExpiryJob struct {
	handler  quoteExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewQuoteExpiryJob takes a six-field cron schedule (with seconds).
// An empty schedule means DefaultQuoteExpirySchedule.
func NewQuoteExpiryJob(handler quoteExpirer, schedule string, logger *slog.Logger) *QuoteExpiryJob {
	if schedule == "" {
		schedule = DefaultQuoteExpirySchedule
	}
	return &QuoteExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "quote_expiry_job"),
	}
}

// Run performs one sweep.
func (j *QuoteExpiryJob) Run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireQuotesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired stale quotes", "count", expired)
	}
}

func (j *QuoteExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *QuoteExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}
