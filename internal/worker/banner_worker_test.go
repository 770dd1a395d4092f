package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/service"
)

type countingRunner struct {
	calls atomic.Int32
}

func (r *countingRunner) Run(context.Context) (service.ScheduleResult, error) {
	r.calls.Add(1)
	return service.ScheduleResult{}, nil
}

func TestRunBannerSchedulerRunsUntilCancelled(t *testing.T) {
	runner := &countingRunner{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		RunBannerScheduler(ctx, runner, 5*time.Millisecond, zap.NewNop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return runner.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
