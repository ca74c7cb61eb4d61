package audit

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/events"
)

type envelope struct {
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	UserID   *uint  `json:"user_id,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
}

// PublishSink forwards events to the broker. The routing key is
// "<entity>.<action>", e.g. "booking.booking_deleted".
type PublishSink struct {
	pub events.Publisher
}

func NewPublishSink(pub events.Publisher) *PublishSink {
	return &PublishSink{pub: pub}
}

func (s *PublishSink) Write(ctx context.Context, ev Event) error {
	return s.pub.PublishJSON(ctx, ev.Entity+"."+ev.Action, envelope{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		UserID:   ev.UserID,
		Metadata: ev.Metadata,
	})
}
