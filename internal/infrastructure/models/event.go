package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
)

type Event struct {
	ID          uuid.UUID      `gorm:"column:eventid;type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name        string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Date        null.Time      `gorm:"column:date"`
	Location    string         `gorm:"type:varchar(200)"`
	Skills      pq.StringArray `gorm:"type:text[]"`
	Capacity    null.Int64     `gorm:"column:capacity"`
	Deadline    null.Time      `gorm:"column:deadline"`
	Status      string         `gorm:"type:varchar(16);not null;default:'open'"`
	Individuals pq.StringArray `gorm:"column:joined_by_individuals;type:text[]"`
	Version     int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"column:createdat"`
	UpdatedAt   time.Time      `gorm:"column:updatedat"`
}

func (Event) TableName() string {
	return "events"
}
