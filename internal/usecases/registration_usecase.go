package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"campus-hub.backend/internal/config"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/domain/repositories"
	"campus-hub.backend/pkg/logger"
	"campus-hub.backend/pkg/utils"
)

// RegistrationUsecase orchestrates the join workflows. Every mutation is a
// read-validate-conditional-write loop: eligibility is checked against the
// snapshot, the write is keyed on the snapshot's version, and a lost race
// re-reads and re-validates. Membership fields change nowhere else.
type RegistrationUsecase struct {
	eventRepo repositories.EventRepository
	teamRepo  repositories.TeamRepository
	policy    config.RegistrationConfig
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	eventRepo repositories.EventRepository,
	teamRepo repositories.TeamRepository,
	policy config.RegistrationConfig,
) *RegistrationUsecase {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &RegistrationUsecase{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
		policy:    policy,
	}
}

// JoinEventAsIndividual registers the actor on the event's individual
// member set. Returns the committed event state, or a denial reason, or
// ErrConcurrencyExhausted after the retry budget runs out.
func (u *RegistrationUsecase) JoinEventAsIndividual(ctx context.Context, eventID, actorID uuid.UUID) (*entities.Event, error) {
	for attempt := 1; attempt <= u.policy.MaxAttempts; attempt++ {
		event, err := u.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		teams, err := u.teamRepo.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}

		if err := CanJoinEventAsIndividual(event, teams, actorID, time.Now()); err != nil {
			return nil, err
		}

		members := append(append([]uuid.UUID{}, event.Individuals...), actorID)
		updated, err := u.eventRepo.UpdateIndividuals(ctx, eventID, members, event.Version)
		if err != nil {
			if errors.Is(err, domainerrors.ErrVersionConflict) {
				logger.Debug(ctx, "event join lost version race",
					zap.String("event_id", eventID.String()),
					zap.Int("attempt", attempt))
				continue
			}
			return nil, err
		}

		logger.Info(ctx, "individual registered for event",
			zap.String("event_id", eventID.String()),
			zap.String("actor_id", actorID.String()),
			zap.Int("member_count", len(updated.Individuals)))
		return updated, nil
	}
	return nil, domainerrors.ErrConcurrencyExhausted
}

// JoinTeam adds the actor to the team's member set under the same
// conditional-write loop.
func (u *RegistrationUsecase) JoinTeam(ctx context.Context, teamID, actorID uuid.UUID) (*entities.Team, error) {
	for attempt := 1; attempt <= u.policy.MaxAttempts; attempt++ {
		team, err := u.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}

		if err := CanJoinTeam(team, actorID); err != nil {
			return nil, err
		}
		if u.policy.SingleTeamPerEvent {
			if err := u.checkNotOnAnotherTeam(ctx, team.EventID, teamID, actorID); err != nil {
				return nil, err
			}
		}

		members := append(append([]uuid.UUID{}, team.Members...), actorID)
		updated, err := u.teamRepo.UpdateMembers(ctx, teamID, members, team.Version)
		if err != nil {
			if errors.Is(err, domainerrors.ErrVersionConflict) {
				logger.Debug(ctx, "team join lost version race",
					zap.String("team_id", teamID.String()),
					zap.Int("attempt", attempt))
				continue
			}
			return nil, err
		}

		logger.Info(ctx, "student joined team",
			zap.String("team_id", teamID.String()),
			zap.String("actor_id", actorID.String()),
			zap.Int("member_count", len(updated.Members)))
		return updated, nil
	}
	return nil, domainerrors.ErrConcurrencyExhausted
}

// CreateTeam creates a team on the event with the actor as creator and sole
// member. Plain insert; no version handling needed.
func (u *RegistrationUsecase) CreateTeam(ctx context.Context, eventID, actorID uuid.UUID, input *entities.CreateTeamInput) (*entities.Team, error) {
	name, err := ValidateTeamName(input.Name)
	if err != nil {
		return nil, err
	}

	if _, err := u.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	if u.policy.UniqueTeamNames {
		taken, err := u.teamRepo.ExistsByEventAndName(ctx, eventID, name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrDuplicateTeamName
		}
	}

	now := time.Now()
	team := &entities.Team{
		ID:          utils.GenerateUUIDv7(),
		EventID:     eventID,
		Name:        name,
		CreatedBy:   actorID,
		Members:     []uuid.UUID{actorID},
		Skills:      input.Skills,
		Difficulty:  input.Difficulty,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	logger.Info(ctx, "team created",
		zap.String("team_id", team.ID.String()),
		zap.String("event_id", eventID.String()),
		zap.String("actor_id", actorID.String()))
	return team, nil
}

func (u *RegistrationUsecase) checkNotOnAnotherTeam(ctx context.Context, eventID, teamID, actorID uuid.UUID) error {
	teams, err := u.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	for _, other := range teams {
		if other.ID != teamID && other.HasMember(actorID) {
			return domainerrors.ErrAlreadyJoined
		}
	}
	return nil
}
