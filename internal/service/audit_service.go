package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/events"
)

// AuditService writes session and banner events to the audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger.Named("audit")}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventSessionStarted, a.handleSession)
	a.dispatcher.Subscribe(events.EventSessionRefreshed, a.handleSession)
	a.dispatcher.Subscribe(events.EventSessionEnded, a.handleSession)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventBannerActivated, a.handleBanner)
	a.dispatcher.Subscribe(events.EventBannerDeactivated, a.handleBanner)
}

func (a *AuditService) handleSession(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type),
		zap.String("principal", string(event.Actor.Kind)),
		zap.String("user_id", event.Actor.UserID),
		zap.Time("at", event.Timestamp))
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("principal", string(event.Actor.Kind)),
		zap.Time("at", event.Timestamp),
	}
	if p, ok := event.Payload.(events.LoginFailedPayload); ok {
		fields = append(fields, zap.String("email", maskEmail(p.Email)), zap.String("reason", p.Reason))
	}
	a.logger.Warn(string(event.Type), fields...)
	return nil
}

func (a *AuditService) handleBanner(_ context.Context, event events.Event) error {
	if p, ok := event.Payload.(events.BannerPayload); ok {
		a.logger.Info(string(event.Type), zap.String("banner_id", p.BannerID), zap.String("title", p.Title))
	}
	return nil
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}
