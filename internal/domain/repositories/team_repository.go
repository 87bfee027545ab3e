package repositories

import (
	"context"

	"github.com/google/uuid"
	"campus-hub.backend/internal/domain/entities"
)

// TeamRepository is the membership store contract for team rows.
// UpdateMembers follows the same conditional-write rules as
// EventRepository.UpdateIndividuals.
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.Team, error)
	UpdateMembers(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Team, error)
	ExistsByEventAndName(ctx context.Context, eventID uuid.UUID, name string) (bool, error)
}
