package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Team struct {
	ID          uuid.UUID      `gorm:"column:teamid;type:uuid;primaryKey;default:uuid_generate_v7()"`
	EventID     uuid.UUID      `gorm:"column:event_id;type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(100);not null"`
	CreatedBy   uuid.UUID      `gorm:"column:created_by;type:uuid;not null"`
	Members     pq.StringArray `gorm:"type:text[]"`
	Skills      pq.StringArray `gorm:"type:text[]"`
	Difficulty  string         `gorm:"type:varchar(32)"`
	Description string         `gorm:"type:text"`
	Version     int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"column:createdat"`
	UpdatedAt   time.Time      `gorm:"column:updatedat"`
}

func (Team) TableName() string {
	return "teams"
}
