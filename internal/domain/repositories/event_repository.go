package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"campus-hub.backend/internal/domain/entities"
)

// EventRepository is the membership store contract for event rows.
// UpdateIndividuals is conditional: it only succeeds when the stored row
// still carries the version the caller read, and fails with
// ErrVersionConflict otherwise. All other writes to the individual member
// set are forbidden.
type EventRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error)
	UpdateIndividuals(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}
