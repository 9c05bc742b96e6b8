package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const Source = "shareit"

const (
	TypeBookingCreated  = "booking.created"
	TypeBookingApproved = "booking.approved"
	TypeBookingRejected = "booking.rejected"
)

// Event is a CloudEvents-style envelope around a JSON payload.
type Event struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Key    string          `json:"-"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// New builds an event; key selects the partition so that events for one
// aggregate stay ordered.
func New(eventType, key string, data any) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s event data: %w", eventType, err)
	}
	return Event{
		ID:     uuid.NewString(),
		Source: Source,
		Type:   eventType,
		Key:    key,
		Time:   time.Now().UTC(),
		Data:   raw,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}
