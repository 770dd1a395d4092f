package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/service"
)

// BannerRunner runs one scheduling pass.
type BannerRunner interface {
	Run(ctx context.Context) (service.ScheduleResult, error)
}

// RunBannerScheduler runs the scheduler immediately and then on every tick
// until ctx is cancelled.
func RunBannerScheduler(ctx context.Context, runner BannerRunner, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce(ctx, runner, logger)
	for {
		select {
		case <-ctx.Done():
			logger.Info("banner scheduler stopped")
			return
		case <-ticker.C:
			runOnce(ctx, runner, logger)
		}
	}
}

func runOnce(ctx context.Context, runner BannerRunner, logger *zap.Logger) {
	if _, err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("banner schedule pass failed", zap.Error(err))
	}
}
