package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// DynamicAdminID stands in for the owner's id when the client does not know it yet.
const DynamicAdminID = "dynamic-admin-id"

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Password    string    `gorm:"not null"`
	Role        UserRole  `gorm:"type:varchar(16);not null;default:'user'"`
	Title       string
	AboutMe     string `gorm:"type:text"`
	Bio         string `gorm:"type:text"`
	Location    string
	Phone       string
	Website     string
	GitHub      string
	LinkedIn    string
	Twitter     string
	AvatarURL   string
	ResumeURL   string
	Status      string
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
