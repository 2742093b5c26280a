package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owned is embedded by every record that belongs to a user.
type Owned struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderIndex int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o *Owned) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
