package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Scheme struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	Benefit       string    `gorm:"type:varchar(200)"`
	Category      string    `gorm:"type:varchar(50);not null;index"`
	Icon          string    `gorm:"type:varchar(16)"`
	MinAge        int       `gorm:"not null;default:0"`
	MaxAge        int       `gorm:"not null;default:100"`
	MaxIncome     int       `gorm:"not null;default:99999999"`
	AllowedCastes string    `gorm:"type:text"` // JSON string, empty array = all castes
	MinEducation  string    `gorm:"type:varchar(50)"`
	TargetSectors string    `gorm:"type:text"` // JSON string, empty array = all sectors
	Position      int       `gorm:"not null;index"` // catalog insertion order
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
