package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule runs the dispatch pass every thirty seconds. The run lock
// inside the handler serializes overlapping triggers with manual API runs.
const dispatchSchedule = "*/30 * * * * *"

// DispatchJob periodically sweeps the pending backlog and assigns orders
// to eligible partners.
type DispatchJob struct {
	handler *commands.RunDispatchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates the scheduled dispatch sweep.
func NewDispatchJob(handler *commands.RunDispatchCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job on its fixed schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRunDispatchCommand()

		entries, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch run failed", "error", err, "attempts", len(entries))
			return
		}

		if len(entries) > 0 {
			assigned := 0
			for _, entry := range entries {
				if entry.IsSuccess() {
					assigned++
				}
			}
			j.logger.InfoContext(ctx, "Dispatch run completed",
				"attempts", len(entries), "assigned", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every thirty seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
