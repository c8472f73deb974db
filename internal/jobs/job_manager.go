package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSummaryJob *OrderSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getTodayOrdersHandler queries.GetTodayOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSummaryJob: NewOrderSummaryJob(getTodayOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSummaryJob.Stop()
}
