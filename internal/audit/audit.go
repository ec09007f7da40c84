// Package audit publishes the admin actions taken from the order console.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	TypeStatusChanged = "order.status_changed"
	TypeDeleted       = "order.deleted"
)

type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	ActorUserID string    `json:"actor_user_id"`
	Status      string    `json:"status,omitempty"`
	At          time.Time `json:"at"`
}

func NewEvent(typ, orderID, actor string, now time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        typ,
		OrderID:     orderID,
		ActorUserID: actor,
		At:          now.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	Log *slog.Logger
}

func NewLogPublisher(l *slog.Logger) *LogPublisher { return &LogPublisher{Log: l} }

func (p *LogPublisher) Publish(ctx context.Context, e Event) error {
	p.Log.LogAttrs(ctx, slog.LevelInfo, "audit_event",
		slog.String("event_id", e.ID),
		slog.String("type", e.Type),
		slog.String("order_id", e.OrderID),
		slog.String("actor_user_id", e.ActorUserID),
		slog.String("status", e.Status),
	)
	return nil
}
