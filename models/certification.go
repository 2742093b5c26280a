package models

import "time"

type Certification struct {
	Owned
	Title         string    `gorm:"not null"`
	Issuer        string    `gorm:"not null"`
	IssueDate     time.Time `gorm:"not null"`
	ExpiryDate    *time.Time
	CredentialID  string
	CredentialURL string
	ImageURL      string
	Description   string `gorm:"type:text"`
}
