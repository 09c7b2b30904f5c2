package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type OutboxCleaner interface {
	Handle(ctx context.Context, cmd commands.CleanupOutboxCommand) (int64, error)
}

// OutboxCleanupJob deletes published outbox messages older than the retention.
type OutboxCleanupJob struct {
	handler   OutboxCleaner
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxCleanupJob(
	handler OutboxCleaner,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *OutboxCleanupJob {
	return &OutboxCleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_cleanup_job"),
	}
}

func (j *OutboxCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce deletes what is due now.
func (j *OutboxCleanupJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewCleanupOutboxCommand(j.now().Add(-j.retention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup job failed", "error", err)
		return 0, err
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup job failed", "error", err)
		return 0, err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Published outbox messages deleted", "count", deleted)
	}
	return deleted, nil
}

func (j *OutboxCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job stopped")
}
