package repositories

import (
	"context"

	"gorm.io/gorm"
	"campus-hub.backend/internal/domain/entities"
	"campus-hub.backend/internal/infrastructure/models"
)

type CollegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

func (r *CollegeRepository) List(ctx context.Context) ([]*entities.College, error) {
	var ms []models.College
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, storeErr("list colleges", err)
	}

	items := make([]*entities.College, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.College{
			ID:   ms[i].ID,
			Name: ms[i].Name,
			City: ms[i].City,
		})
	}
	return items, nil
}
