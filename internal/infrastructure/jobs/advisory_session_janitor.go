package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"scheme-sense.backend/internal/usecases"
	"scheme-sense.backend/pkg/logger"
)

// AdvisorySessionJanitor periodically expires idle advisory conversations so
// abandoned streams do not accumulate for the process lifetime.
type AdvisorySessionJanitor struct {
	advisory *usecases.AdvisoryUsecase
	interval time.Duration
	stop     chan struct{}
}

func NewAdvisorySessionJanitor(advisory *usecases.AdvisoryUsecase) *AdvisorySessionJanitor {
	return &AdvisorySessionJanitor{
		advisory: advisory,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *AdvisorySessionJanitor) Start(ctx context.Context) {
	logger.Info(ctx, "Starting advisory session janitor")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Advisory session janitor stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Advisory session janitor stopped")
			return
		case <-ticker.C:
			if n := j.advisory.ExpireIdleSessions(time.Now()); n > 0 {
				logger.Debug(ctx, "Expired idle advisory sessions", zap.Int("count", n))
			}
		}
	}
}

func (j *AdvisorySessionJanitor) Stop() {
	close(j.stop)
}
