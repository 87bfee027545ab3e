package entities

import "github.com/google/uuid"

// RosterIndividual is one individually registered student on an event
// roster. Name and College stay empty when the profile record could not be
// resolved; the identifier is always present.
type RosterIndividual struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name,omitempty"`
	College string    `json:"college,omitempty"`
}

// RosterTeam is one registered team on an event roster
type RosterTeam struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"memberCount"`
}

// EventRoster is the consolidated registration view of an event
type EventRoster struct {
	Event       *Event             `json:"event"`
	Individuals []RosterIndividual `json:"individuals"`
	Teams       []RosterTeam       `json:"teams"`
}
