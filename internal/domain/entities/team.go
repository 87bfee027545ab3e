package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a group of students registered together for one event
type Team struct {
	ID          uuid.UUID   `json:"id"`
	EventID     uuid.UUID   `json:"eventId"`
	Name        string      `json:"name"`
	CreatedBy   uuid.UUID   `json:"createdBy"`
	Members     []uuid.UUID `json:"members"`
	Skills      []string    `json:"skills,omitempty"`
	Difficulty  string      `json:"difficulty,omitempty"`
	Description string      `json:"description,omitempty"`
	Version     int         `json:"version"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// HasMember reports whether the actor is already part of the team.
func (t *Team) HasMember(actorID uuid.UUID) bool {
	for _, id := range t.Members {
		if id == actorID {
			return true
		}
	}
	return false
}

// CreateTeamInput represents input for creating a team on an event
type CreateTeamInput struct {
	Name        string   `json:"name" binding:"required"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
}
