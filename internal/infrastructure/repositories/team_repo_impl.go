package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storeErr("create team", err)
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := r.db.WithContext(ctx).Where("teamid = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storeErr("get team", err)
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entities.Team, error) {
	var ms []models.Team
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("createdat ASC").
		Find(&ms).Error; err != nil {
		return nil, storeErr("list teams", err)
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// UpdateMembers replaces the member set under the same conditional-write
// rules as EventRepository.UpdateIndividuals.
func (r *TeamRepository) UpdateMembers(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Team, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("teamid = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"members":   toStringArray(members),
			"version":   version + 1,
			"updatedat": time.Now(),
		})
	if result.Error != nil {
		return nil, storeErr("update team members", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domainerrors.ErrVersionConflict
	}
	return r.GetByID(ctx, id)
}

func (r *TeamRepository) ExistsByEventAndName(ctx context.Context, eventID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("event_id = ? AND LOWER(name) = ?", eventID, strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return false, storeErr("check team name", err)
	}
	return count > 0, nil
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:          m.ID,
		EventID:     m.EventID,
		Name:        m.Name,
		CreatedBy:   m.CreatedBy,
		Members:     toUUIDs(m.Members),
		Skills:      m.Skills,
		Difficulty:  m.Difficulty,
		Description: m.Description,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:          e.ID,
		EventID:     e.EventID,
		Name:        e.Name,
		CreatedBy:   e.CreatedBy,
		Members:     toStringArray(e.Members),
		Skills:      e.Skills,
		Difficulty:  e.Difficulty,
		Description: e.Description,
		Version:     e.Version,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
