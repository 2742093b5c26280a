package models

import "time"

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

func (s TestimonialStatus) Valid() bool {
	switch s {
	case TestimonialPending, TestimonialApproved, TestimonialRejected:
		return true
	}
	return false
}

type Testimonial struct {
	Owned
	Name         string `gorm:"not null"`
	Position     string
	Company      string
	Relationship string
	Content      string `gorm:"type:text;not null"`
	AvatarURL    string
	Rating       int
	Status       TestimonialStatus `gorm:"type:varchar(16);index;not null;default:'pending'"`
	ApprovedAt   *time.Time
	RejectedAt   *time.Time
}
