// Package jobs contains the application's scheduled background work.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"printz/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderReminderJob periodically surveys shop queues for orders stuck
// in Processing past a configured age and logs a reminder per shop. It
// never mutates state; the log line is the nudge.
type StaleOrderReminderJob struct {
	handler   queries.GetStaleOrdersQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderReminderJob creates a reminder job that flags orders older
// than olderThan. Runs every five minutes.
func NewStaleOrderReminderJob(
	handler queries.GetStaleOrdersQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleOrderReminderJob {
	return &StaleOrderReminderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_order_reminder_job"),
	}
}

// Start begins the reminder job on a five minute schedule.
func (j *StaleOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order reminder job started (running every five minutes)",
		"older_than", j.olderThan.String())
	return nil
}

// Stop stops the reminder job.
func (j *StaleOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order reminder job stopped")
}

func (j *StaleOrderReminderJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleOrdersQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order reminder job misconfigured", "error", err)
		return
	}

	queues, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order survey failed", "error", err)
		return
	}

	for _, queue := range queues {
		j.logger.WarnContext(ctx, "Shop queue holds stale orders",
			"shop", queue.Shop,
			"order_count", queue.OrderCount,
			"oldest_age", queue.OldestAge.Round(time.Minute).String())
	}
}
