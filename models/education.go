package models

import "time"

type Education struct {
	Owned
	Institution  string `gorm:"not null"`
	Degree       string `gorm:"not null"`
	FieldOfStudy string
	Location     string
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	IsCurrent    bool
	Grade        string
	Description  string `gorm:"type:text"`
	LogoURL      string
}

func (Education) TableName() string {
	return "education"
}
