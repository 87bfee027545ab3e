package entities

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a student profile. Profiles are owned by the external
// profile/auth system; this service only reads them.
type Student struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	CollegeID uuid.NullUUID `json:"collegeId,omitempty"`
	Skills    []string      `json:"skills"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// College is a display-only lookup record
type College struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
}
