package domain

import (
	"strings"
	"time"
)

// Actions emitted by the backend reservation topics.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CalendarTopic is the websocket topic the admin calendar subscribes to.
const CalendarTopic = "calendario.reservas"

// Message is one realtime event, either as ingested from Kafka or as pushed
// to websocket subscribers.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// BuildCalendarMessage composes the push sent to calendar subscribers after
// a reservation event.
func BuildCalendarMessage(action, resourceID string, data any, at time.Time) *Message {
	return &Message{
		Topic:      CalendarTopic,
		Entity:     "reservas",
		Action:     strings.ToLower(strings.TrimSpace(action)),
		ResourceID: strings.TrimSpace(resourceID),
		Data:       data,
		Timestamp:  at.UTC(),
	}
}
