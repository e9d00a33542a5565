package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"tradeport.backend/internal/domain/repositories"
	"tradeport.backend/pkg/logger"
	"tradeport.backend/pkg/metrics"
)

// ApprovalReminderJob periodically counts seller approval requests that have
// sat in the queue past maxAge, flags them in the logs, and keeps the
// approval backlog gauge current.
type ApprovalReminderJob struct {
	repo     repositories.ApprovalRequestRepository
	interval time.Duration
	maxAge   time.Duration
	stop     chan struct{}
}

func NewApprovalReminderJob(repo repositories.ApprovalRequestRepository, interval, maxAge time.Duration) *ApprovalReminderJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &ApprovalReminderJob{
		repo:     repo,
		interval: interval,
		maxAge:   maxAge,
		stop:     make(chan struct{}),
	}
}

func (j *ApprovalReminderJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting approval reminder job",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "approval reminder job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "approval reminder job stopped")
			return
		case <-ticker.C:
			j.checkBacklog(ctx)
		}
	}
}

func (j *ApprovalReminderJob) Stop() {
	close(j.stop)
}

func (j *ApprovalReminderJob) checkBacklog(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)
	stale, err := j.repo.CountStalePending(ctx, cutoff)
	if err != nil {
		logger.Error(ctx, "failed to count stale approval requests", zap.Error(err))
		return
	}

	metrics.ApprovalBacklog.Set(float64(stale))

	if stale > 0 {
		logger.Warn(ctx, "seller approval requests awaiting review past SLA",
			zap.Int64("count", stale),
			zap.Time("older_than", cutoff),
		)
	}
}
