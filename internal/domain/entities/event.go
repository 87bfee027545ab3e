package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EventStatus represents the lifecycle state of an event's registration window
type EventStatus string

const (
	EventStatusOpen   EventStatus = "open"
	EventStatusClosed EventStatus = "closed"
)

// Event represents a campus event students can register for, either
// individually or through teams. Individuals holds the individually
// registered students; team membership lives on the Team rows. Version
// guards concurrent membership writes.
type Event struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Date        null.Time   `json:"date,omitempty"`
	Location    string      `json:"location,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Capacity    null.Int64  `json:"capacity,omitempty"`
	Deadline    null.Time   `json:"deadline,omitempty"`
	Status      EventStatus `json:"status"`
	Individuals []uuid.UUID `json:"individuals"`
	Version     int         `json:"version"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// HasIndividual reports whether the actor is already individually registered.
func (e *Event) HasIndividual(actorID uuid.UUID) bool {
	for _, id := range e.Individuals {
		if id == actorID {
			return true
		}
	}
	return false
}

// IsFull reports whether the individual capacity limit has been reached.
// Events without a capacity are never full.
func (e *Event) IsFull() bool {
	return e.Capacity.Valid && int64(len(e.Individuals)) >= e.Capacity.Int64
}
