package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"campus-hub.backend/internal/domain/entities"
	domainerrors "campus-hub.backend/internal/domain/errors"
	"campus-hub.backend/internal/infrastructure/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := r.db.WithContext(ctx).Where("eventid = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, storeErr("get event", err)
	}
	return r.toEntity(&m), nil
}

func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*entities.Event, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, storeErr("count events", err)
	}

	query := r.db.WithContext(ctx).Order("date ASC, createdat ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Event
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, storeErr("list events", err)
	}

	items := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

// UpdateIndividuals replaces the individual member set, but only when the
// stored row still carries the version the caller read. Losing the race
// returns ErrVersionConflict so the workflow can re-read and retry.
func (r *EventRepository) UpdateIndividuals(ctx context.Context, id uuid.UUID, members []uuid.UUID, version int) (*entities.Event, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("eventid = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"joined_by_individuals": toStringArray(members),
			"version":               version + 1,
			"updatedat":             time.Now(),
		})
	if result.Error != nil {
		return nil, storeErr("update event members", result.Error)
	}
	if result.RowsAffected == 0 {
		// Stale version or missing row; tell them apart.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, domainerrors.ErrVersionConflict
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("eventid = ?", id).
		Updates(map[string]interface{}{
			"status":    string(status),
			"version":   gorm.Expr("version + 1"),
			"updatedat": time.Now(),
		})
	if result.Error != nil {
		return storeErr("update event status", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CloseExpired flips open events whose registration deadline has passed to
// closed. The version bump invalidates any in-flight conditional member
// writes that read the row while it was still open.
func (r *EventRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline <= ?", string(entities.EventStatusOpen), now).
		Updates(map[string]interface{}{
			"status":    string(entities.EventStatusClosed),
			"version":   gorm.Expr("version + 1"),
			"updatedat": now,
		})
	if result.Error != nil {
		return 0, storeErr("close expired events", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Date:        m.Date,
		Location:    m.Location,
		Skills:      m.Skills,
		Capacity:    m.Capacity,
		Deadline:    m.Deadline,
		Status:      entities.EventStatus(m.Status),
		Individuals: toUUIDs(m.Individuals),
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
