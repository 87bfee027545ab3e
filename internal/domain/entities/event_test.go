package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestEventHasIndividual(t *testing.T) {
	actor := uuid.New()
	event := &Event{Individuals: []uuid.UUID{uuid.New(), actor}}

	assert.True(t, event.HasIndividual(actor))
	assert.False(t, event.HasIndividual(uuid.New()))
	assert.False(t, (&Event{}).HasIndividual(actor))
}

func TestEventIsFull(t *testing.T) {
	members := []uuid.UUID{uuid.New(), uuid.New()}

	assert.False(t, (&Event{Individuals: members}).IsFull(), "no capacity set")
	assert.False(t, (&Event{Individuals: members, Capacity: null.Int64From(3)}).IsFull())
	assert.True(t, (&Event{Individuals: members, Capacity: null.Int64From(2)}).IsFull())
	assert.True(t, (&Event{Individuals: members, Capacity: null.Int64From(1)}).IsFull(), "over capacity still full")
	assert.True(t, (&Event{Capacity: null.Int64From(0)}).IsFull(), "zero capacity")
}

func TestTeamHasMember(t *testing.T) {
	actor := uuid.New()
	team := &Team{Members: []uuid.UUID{actor}}

	assert.True(t, team.HasMember(actor))
	assert.False(t, team.HasMember(uuid.New()))
	assert.False(t, (&Team{}).HasMember(actor))
}
