package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventBookingCreated     EventType = "booking_created"
	EventBookingCancelled   EventType = "booking_cancelled"
	EventBookingCheckedIn   EventType = "booking_checked_in"
	EventPurchaseCreated    EventType = "purchase_created"
	EventCreditRedeemed     EventType = "credit_redeemed"
	EventPackageCreated     EventType = "package_created"
	EventPoolCreated        EventType = "pool_created"
	EventPoolUpdated        EventType = "pool_updated"
	EventMenuItemCreated    EventType = "menu_item_created"
	EventMenuItemUpdated    EventType = "menu_item_updated"
)

type Event struct {
	ID          uuid.UUID      `json:"id"`
	Type        EventType      `json:"type"`
	AggregateID uuid.UUID      `json:"aggregateId"`
	ActorID     *uuid.UUID     `json:"actorId,omitempty"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Data        map[string]any `json:"data,omitempty"`
}

func NewEvent(typ EventType, aggregateID uuid.UUID, actorID *uuid.UUID, at time.Time, data map[string]any) Event {
	return Event{
		ID:          uuid.New(),
		Type:        typ,
		AggregateID: aggregateID,
		ActorID:     actorID,
		OccurredAt:  at,
		Data:        data,
	}
}

// EventPublisher fans domain events out after the write that produced them commits.
// Publishing is best effort; a failure never undoes the write.
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
}
