package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/events"
	"github.com/Avangel08/furniro-sub001/internal/observability"
	"github.com/Avangel08/furniro-sub001/internal/repository"
	"github.com/Avangel08/furniro-sub001/internal/repository/repofake"
)

func ptrTime(t time.Time) *time.Time { return &t }

type failingBannerRepo struct {
	*repofake.BannerRepo
	failID string
}

func (r failingBannerRepo) SetActive(ctx context.Context, id string, active bool) error {
	if id == r.failID {
		return errors.New("write failed")
	}
	return r.BannerRepo.SetActive(ctx, id, active)
}

func TestBannerSchedulerRun(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := repofake.NewBannerRepo(
		domain.Banner{ID: "a-starts-now", StartDate: ptrTime(now.Add(-time.Hour)), EndDate: ptrTime(now.Add(time.Hour))},
		domain.Banner{ID: "b-ended", StartDate: ptrTime(now.Add(-48 * time.Hour)), EndDate: ptrTime(now.Add(-time.Hour)), Active: true},
		domain.Banner{ID: "c-future", StartDate: ptrTime(now.Add(time.Hour))},
		domain.Banner{ID: "d-already-active", EndDate: ptrTime(now.Add(time.Hour)), Active: true},
		domain.Banner{ID: "e-unscheduled", Active: false},
	)

	dispatcher := events.NewInMemoryDispatcher()
	rec := &recordedEvents{}
	dispatcher.Subscribe(events.EventBannerActivated, rec.handler)
	dispatcher.Subscribe(events.EventBannerDeactivated, rec.handler)

	scheduler := NewBannerScheduler(repo, dispatcher, observability.NewMetrics(), nil, func() time.Time { return now })

	result, err := scheduler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScheduleResult{Checked: 4, Activated: 1, Deactivated: 1}, result)

	a, _ := repo.Get("a-starts-now")
	assert.True(t, a.Active)
	b, _ := repo.Get("b-ended")
	assert.False(t, b.Active)
	c, _ := repo.Get("c-future")
	assert.False(t, c.Active)
	e, _ := repo.Get("e-unscheduled")
	assert.False(t, e.Active)

	assert.ElementsMatch(t, []events.EventType{events.EventBannerActivated, events.EventBannerDeactivated}, rec.list())

	again, err := scheduler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Activated+again.Deactivated)
}

func TestBannerSchedulerContinuesPastFailures(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := failingBannerRepo{
		BannerRepo: repofake.NewBannerRepo(
			domain.Banner{ID: "a", StartDate: ptrTime(now.Add(-time.Hour))},
			domain.Banner{ID: "b", StartDate: ptrTime(now.Add(-time.Hour))},
		),
		failID: "a",
	}

	scheduler := NewBannerScheduler(repo, nil, nil, nil, func() time.Time { return now })
	result, err := scheduler.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Activated)
}

func TestBannerSchedulerListFailure(t *testing.T) {
	repo := repofake.NewBannerRepo()
	repo.Err = repository.ErrNotFound

	_, err := NewBannerScheduler(repo, nil, nil, nil, nil).Run(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBannerSchedulerLeavesUnboundedBannersAlone(t *testing.T) {
	repo := repofake.NewBannerRepo(
		domain.Banner{ID: "switched-off", Active: false},
		domain.Banner{ID: "switched-on", Active: true},
	)
	scheduler := NewBannerScheduler(repo, nil, nil, nil, nil)

	result, err := scheduler.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ScheduleResult{}, result)

	off, _ := repo.Get("switched-off")
	assert.False(t, off.Active)
	on, _ := repo.Get("switched-on")
	assert.True(t, on.Active)
}
