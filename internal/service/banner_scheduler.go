package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/events"
	"github.com/Avangel08/furniro-sub001/internal/observability"
	"github.com/Avangel08/furniro-sub001/internal/repository"
)

// ScheduleResult summarizes one scheduler pass.
type ScheduleResult struct {
	Checked     int `json:"checked"`
	Activated   int `json:"activated"`
	Deactivated int `json:"deactivated"`
	Failed      int `json:"failed"`
}

// BannerScheduler aligns banner active flags with their date windows.
type BannerScheduler struct {
	banners    repository.BannerRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewBannerScheduler creates the scheduler. now defaults to time.Now.
func NewBannerScheduler(banners repository.BannerRepository, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger, now func() time.Time) *BannerScheduler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BannerScheduler{banners: banners, dispatcher: dispatcher, metrics: metrics, logger: logger, now: now}
}

// Run flips every scheduled banner whose flag disagrees with its window.
// A failed update is counted and the pass continues.
func (s *BannerScheduler) Run(ctx context.Context) (ScheduleResult, error) {
	var result ScheduleResult

	banners, err := s.banners.ListScheduled(ctx)
	if err != nil {
		return result, fmt.Errorf("list scheduled banners: %w", err)
	}

	now := s.now()
	var errs []error
	for _, banner := range banners {
		result.Checked++
		want := banner.ShouldBeActive(now)
		if want == banner.Active {
			continue
		}

		if err := s.banners.SetActive(ctx, banner.ID, want); err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("banner %s: %w", banner.ID, err))
			continue
		}

		eventType := events.EventBannerDeactivated
		if want {
			result.Activated++
			eventType = events.EventBannerActivated
		} else {
			result.Deactivated++
		}
		s.publish(ctx, events.Event{
			Type:      eventType,
			Timestamp: now,
			Payload:   events.BannerPayload{BannerID: banner.ID, Title: banner.Title},
		})
	}

	s.metrics.RecordBannerChanges(result.Activated, result.Deactivated)
	s.logger.Info("banner schedule applied",
		zap.Int("checked", result.Checked),
		zap.Int("activated", result.Activated),
		zap.Int("deactivated", result.Deactivated),
		zap.Int("failed", result.Failed))

	return result, errors.Join(errs...)
}

func (s *BannerScheduler) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
