package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderSummaryJob logs a daily summary of the orders placed that day.
// Runs just before midnight so the listing still covers the full day.
type OrderSummaryJob struct {
	handler queries.GetTodayOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSummaryJob creates a new job for the nightly order summary.
// Uses GetTodayOrdersQueryHandler to read the day's orders.
func NewOrderSummaryJob(handler queries.GetTodayOrdersQueryHandler, logger *slog.Logger) *OrderSummaryJob {
	return &OrderSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_summary_job"),
	}
}

// Start schedules the summary at 23:59:00 local time every day.
func (j *OrderSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 59 23 * * *", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order summary job started (running daily at 23:59)")
	return nil
}

// Run executes one summary pass. Exposed so the summary can also be
// triggered on demand.
func (j *OrderSummaryJob) Run() {
	ctx := context.Background()
	query := queries.NewGetTodayOrdersQuery()

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order summary job failed", "error", err)
		return
	}

	var units int
	var totalCents int64
	for _, row := range orders {
		units += row.Units
		totalCents += row.TotalCents
	}

	j.logger.InfoContext(ctx, "Daily order summary",
		"orders", len(orders),
		"units", units,
		"total_cents", totalCents,
	)
}

// Stop stops the order summary job.
func (j *OrderSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order summary job stopped")
}
