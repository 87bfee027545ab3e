package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/pkg/logger"
)

// EventCloseJob flips open events to closed once their registration
// deadline passes, so eligibility denials come from row state rather than
// every reader re-deriving deadline status.
type EventCloseJob struct {
	repo     repositories.EventRepository
	interval time.Duration
	stop     chan struct{}
}

func NewEventCloseJob(repo repositories.EventRepository, interval time.Duration) *EventCloseJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &EventCloseJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *EventCloseJob) Start(ctx context.Context) {
	logger.Info(ctx, "event close job started", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "event close job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "event close job stopped")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

func (j *EventCloseJob) Stop() {
	close(j.stop)
}

// Sweep closes all events past their deadline once.
func (j *EventCloseJob) Sweep(ctx context.Context) {
	closed, err := j.repo.CloseExpired(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "closing expired events failed", zap.Error(err))
		return
	}
	if closed > 0 {
		logger.Info(ctx, "closed expired events", zap.Int64("count", closed))
	}
}
