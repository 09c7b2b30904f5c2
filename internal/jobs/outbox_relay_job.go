package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EverySecond is the default relay schedule.
const EverySecond = "* * * * * *"

type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxMessagesCommand) (int, error)
}

// OutboxRelayJob publishes pending outbox messages on a schedule.
// A tick keeps claiming batches while they come back full.
type OutboxRelayJob struct {
	handler   OutboxPublisher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler OutboxPublisher, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins relaying on the configured schedule.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewPublishOutboxMessagesCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce drains the outbox and returns how many messages were published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context, cmd commands.PublishOutboxMessagesCommand) int {
	total := 0
	for {
		published, err := j.handler.Handle(ctx, cmd)
		total += published
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err, "published", published)
			return total
		}
		if published < cmd.BatchSize() {
			if total > 0 {
				j.logger.DebugContext(ctx, "Outbox messages published", "count", total)
			}
			return total
		}
	}
}

// Stop waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
