package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Student struct {
	ID        uuid.UUID      `gorm:"column:userid;type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(120);not null"`
	CollegeID uuid.NullUUID  `gorm:"column:collegeid;type:uuid"`
	Skills    pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"column:createdat"`
	UpdatedAt time.Time      `gorm:"column:updatedat"`
}

func (Student) TableName() string {
	return "studentdetails"
}

type College struct {
	ID   uuid.UUID `gorm:"column:collegeid;type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(200);not null"`
	City string    `gorm:"type:varchar(120);not null"`
}

func (College) TableName() string {
	return "colleges"
}
