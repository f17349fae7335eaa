package event

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope a Bus builds around every dispatched payload.
type Event struct {
	ID        string    `json:"id"`         // Unique identifier for the event
	Name      string    `json:"name"`       // Event type name (e.g., "RouteResolved")
	Payload   any       `json:"payload"`    // Event data
	CreatedAt time.Time `json:"created_at"` // When the event was created
}

// NewEvent creates a new Event with auto-generated ID and timestamp.
// The event name is derived from the payload type.
//
// Example:
//
//	evt := event.NewEvent(event.RouteNotFound{Request: req})
//	// evt.Name == "RouteNotFound"
func NewEvent(payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      NameOf(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// NameOf returns the event name for v: the name of its type with pointers
// dereferenced. Unnamed types yield their type string.
func NameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
