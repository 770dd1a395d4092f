package events

import (
	"time"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionStarted    EventType = "session_started"
	EventSessionRefreshed  EventType = "session_refreshed"
	EventSessionEnded      EventType = "session_ended"
	EventLoginFailed       EventType = "login_failed"
	EventBannerActivated   EventType = "banner_activated"
	EventBannerDeactivated EventType = "banner_deactivated"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Kind   domain.PrincipalKind `json:"kind,omitempty"`
	UserID string               `json:"user_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// LoginFailedPayload payload. Reason is internal only and never sent to callers.
type LoginFailedPayload struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BannerPayload payload.
type BannerPayload struct {
	BannerID string `json:"banner_id"`
	Title    string `json:"title"`
}
