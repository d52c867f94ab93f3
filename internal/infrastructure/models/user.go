package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Age           int       `gorm:"not null"`
	Income        int       `gorm:"not null"`
	Caste         string    `gorm:"type:varchar(20);not null"`
	Education     string    `gorm:"type:varchar(50);not null"`
	District      string    `gorm:"type:varchar(50);not null"`
	Block         string    `gorm:"type:varchar(80);not null"`
	Sector        string    `gorm:"type:varchar(50);not null"`
	SectorDetails string    `gorm:"type:text"` // JSON string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
