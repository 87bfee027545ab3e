package usecases

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
)

// Team names: trimmed, 3-100 chars, letters/digits/space/underscore/hyphen.
const (
	teamNameMinLen = 3
	teamNameMaxLen = 100
)

var teamNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// CanJoinEventAsIndividual decides whether the actor may register for the
// event right now. Pure; operates on the snapshot the caller read. The
// first failing check wins: closed, deadline, duplicate, capacity.
func CanJoinEventAsIndividual(event *entities.Event, eventTeams []*entities.Team, actorID uuid.UUID, now time.Time) error {
	if event.Status != entities.EventStatusOpen {
		return domainerrors.ErrEventClosed
	}
	if event.Deadline.Valid && now.After(event.Deadline.Time) {
		return domainerrors.ErrDeadlinePassed
	}
	if event.HasIndividual(actorID) {
		return domainerrors.ErrAlreadyJoined
	}
	for _, team := range eventTeams {
		if team.HasMember(actorID) {
			return domainerrors.ErrAlreadyJoined
		}
	}
	if event.IsFull() {
		return domainerrors.ErrEventFull
	}
	return nil
}

// CanJoinTeam decides whether the actor may join the team.
func CanJoinTeam(team *entities.Team, actorID uuid.UUID) error {
	if team.HasMember(actorID) {
		return domainerrors.ErrAlreadyMember
	}
	return nil
}

// ValidateTeamName normalizes and validates a proposed team name, returning
// the trimmed name on success.
func ValidateTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < teamNameMinLen || len(name) > teamNameMaxLen {
		return "", domainerrors.ErrInvalidTeamName
	}
	if !teamNamePattern.MatchString(name) {
		return "", domainerrors.ErrInvalidTeamName
	}
	return name, nil
}
