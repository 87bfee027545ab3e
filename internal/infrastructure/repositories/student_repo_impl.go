package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/infrastructure/models"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Student, error) {
	var m models.Student
	if err := r.db.WithContext(ctx).Where("userid = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storeErr("get student", err)
	}
	return r.toEntity(&m), nil
}

// GetByIDs batch-fetches student profiles. Unknown identifiers are simply
// absent from the result; callers decide how to render the gap.
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Student, error) {
	if len(ids) == 0 {
		return []*entities.Student{}, nil
	}

	var ms []models.Student
	if err := r.db.WithContext(ctx).Where("userid IN ?", ids).Find(&ms).Error; err != nil {
		return nil, storeErr("batch get students", err)
	}

	items := make([]*entities.Student, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *StudentRepository) toEntity(m *models.Student) *entities.Student {
	return &entities.Student{
		ID:        m.ID,
		Name:      m.Name,
		CollegeID: m.CollegeID,
		Skills:    m.Skills,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
