package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderFlowJob *OrderFlowJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orderFlowJob *OrderFlowJob) *JobManager {
	return &JobManager{
		orderFlowJob: orderFlowJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderFlowJob.Start(); err != nil {
		return fmt.Errorf("failed to start order flow job: %w", err)
	}

	return nil
}

// StopAll stops all running jobs.
func (jm *JobManager) StopAll() {
	jm.orderFlowJob.Stop()
}
