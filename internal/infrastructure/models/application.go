package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SchemeID    uuid.UUID `gorm:"type:uuid;not null"`
	SchemeTitle string    `gorm:"type:varchar(200);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	AppliedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
