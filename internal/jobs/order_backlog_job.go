package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the report every five minutes.
const DefaultBacklogSchedule = "0 */5 * * * *"

const backlogTimeout = 30 * time.Second

// OrderBacklogReader is implemented by queries.GetOrderBacklogQueryHandler.
type OrderBacklogReader interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.OrderBacklog, error)
}

// OrderBacklogJob periodically logs how many pending orders wait for a delivery crew
// member and how many are out for delivery. It never changes orders.
type OrderBacklogJob struct {
	reader   OrderBacklogReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job. schedule is a cron expression with a leading
// seconds field; an empty schedule means DefaultBacklogSchedule.
func NewOrderBacklogJob(reader OrderBacklogReader, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start schedules the report. It fails on an invalid schedule.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), backlogTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderBacklogJob) Run(ctx context.Context) {
	backlog, err := j.reader.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"unassigned", backlog.Unassigned,
		"out_for_delivery", backlog.OutForDelivery,
	)
}

// Stop stops scheduling and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order backlog job stopped")
}
