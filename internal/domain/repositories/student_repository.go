package repositories

import (
	"context"

	"github.com/google/uuid"
	"campus-hub.backend/internal/domain/entities"
)

// StudentRepository reads student profiles. GetByIDs is a batch lookup;
// identifiers without a matching row are simply absent from the result.
type StudentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Student, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error)
}

// CollegeRepository reads the display-only college lookup table.
type CollegeRepository interface {
	List(ctx context.Context) ([]*entities.College, error)
}
