package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"campus-hub.backend/internal/domain/entities"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/pkg/logger"
	"campus-hub.backend/pkg/redis"
)

var (
	rosterCacheGet = redis.Get
	rosterCacheSet = redis.Set
)

// RosterUsecase assembles the consolidated registration view of an event.
type RosterUsecase struct {
	eventRepo   repositories.EventRepository
	teamRepo    repositories.TeamRepository
	studentRepo repositories.StudentRepository
	collegeRepo repositories.CollegeRepository
	cacheTTL    time.Duration
}

// NewRosterUsecase creates a new roster usecase
func NewRosterUsecase(
	eventRepo repositories.EventRepository,
	teamRepo repositories.TeamRepository,
	studentRepo repositories.StudentRepository,
	collegeRepo repositories.CollegeRepository,
	cacheTTL time.Duration,
) *RosterUsecase {
	return &RosterUsecase{
		eventRepo:   eventRepo,
		teamRepo:    teamRepo,
		studentRepo: studentRepo,
		collegeRepo: collegeRepo,
		cacheTTL:    cacheTTL,
	}
}

// GetEventRoster returns who is registered for the event, individuals and
// teams. Identity records are looked up in one batch; identifiers without a
// resolvable profile are kept as id-only placeholders rather than dropped.
// Results may be served from a short-lived cache; the cache is read-through
// and never load-bearing.
func (u *RosterUsecase) GetEventRoster(ctx context.Context, eventID uuid.UUID) (*entities.EventRoster, error) {
	if roster := u.fromCache(ctx, eventID); roster != nil {
		return roster, nil
	}

	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	students, err := u.studentRepo.GetByIDs(ctx, event.Individuals)
	if err != nil {
		return nil, err
	}
	studentsByID := make(map[uuid.UUID]*entities.Student, len(students))
	for _, s := range students {
		studentsByID[s.ID] = s
	}

	collegeNames, err := u.collegeNames(ctx)
	if err != nil {
		return nil, err
	}

	individuals := make([]entities.RosterIndividual, 0, len(event.Individuals))
	for _, id := range event.Individuals {
		student, ok := studentsByID[id]
		if !ok {
			individuals = append(individuals, entities.RosterIndividual{ID: id})
			continue
		}
		college := ""
		if student.CollegeID.Valid {
			college = collegeNames[student.CollegeID.UUID]
			if college == "" {
				college = "Unknown College"
			}
		}
		individuals = append(individuals, entities.RosterIndividual{
			ID:      id,
			Name:    student.Name,
			College: college,
		})
	}

	// The Team row owns the team-to-event association; the event row
	// stores no team list.
	teams, err := u.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	rosterTeams := make([]entities.RosterTeam, 0, len(teams))
	for _, t := range teams {
		rosterTeams = append(rosterTeams, entities.RosterTeam{
			ID:          t.ID,
			Name:        t.Name,
			MemberCount: len(t.Members),
		})
	}

	roster := &entities.EventRoster{
		Event:       event,
		Individuals: individuals,
		Teams:       rosterTeams,
	}
	u.toCache(ctx, eventID, roster)
	return roster, nil
}

func (u *RosterUsecase) collegeNames(ctx context.Context) (map[uuid.UUID]string, error) {
	colleges, err := u.collegeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(colleges))
	for _, c := range colleges {
		names[c.ID] = c.Name
	}
	return names, nil
}

func rosterCacheKey(eventID uuid.UUID) string {
	return "roster:" + eventID.String()
}

func (u *RosterUsecase) fromCache(ctx context.Context, eventID uuid.UUID) *entities.EventRoster {
	if u.cacheTTL <= 0 || redis.GetClient() == nil {
		return nil
	}
	raw, err := rosterCacheGet(ctx, rosterCacheKey(eventID))
	if err != nil {
		return nil
	}
	var roster entities.EventRoster
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		return nil
	}
	return &roster
}

func (u *RosterUsecase) toCache(ctx context.Context, eventID uuid.UUID, roster *entities.EventRoster) {
	if u.cacheTTL <= 0 || redis.GetClient() == nil {
		return
	}
	raw, err := json.Marshal(roster)
	if err != nil {
		return
	}
	if err := rosterCacheSet(ctx, rosterCacheKey(eventID), raw, u.cacheTTL); err != nil {
		logger.Debug(ctx, "roster cache write failed", zap.Error(err))
	}
}
