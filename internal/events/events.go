package events

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	OrderCreated                  Type = "order.created"
	OrderStatusChanged            Type = "order.status_changed"
	OrderUpdatePosted             Type = "order.update_posted"
	OrderCommentPosted            Type = "order.comment_posted"
	StakeholderInvited            Type = "stakeholder.invited"
	StakeholderRemoved            Type = "stakeholder.removed"
	StakeholderPermissionsChanged Type = "stakeholder.permissions_changed"
)

// Event is an activity record keyed by order. Payload is the entity the event
// is about.
type Event struct {
	ID         string      `json:"id"`
	Type       Type        `json:"type"`
	OrderID    string      `json:"orderId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

func New(eventType Type, orderID string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher must not block the caller.
type Publisher interface {
	Publish(event Event)
}

type Noop struct{}

func (Noop) Publish(Event) {}
