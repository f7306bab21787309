// Package events publishes booking lifecycle events to Kafka.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents is the topic carrying booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Booking lifecycle event types.
const (
	BookingCreated  = "booking.created"
	BookingApproved = "booking.approved"
	BookingRejected = "booking.rejected"
)

// CloudEvent is the envelope every published event is wrapped in.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps event data in an envelope.
func NewCloudEvent(source, eventType string, data interface{}) (*CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseData unmarshals the envelope's data into v.
func (e *CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// BookingCreatedEvent is emitted when a booking is persisted in WAITING.
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingResolvedEvent is emitted when an owner approves or rejects a
// booking; Type on the envelope carries which.
type BookingResolvedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
