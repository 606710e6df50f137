package models

import "time"

type Application struct {
	BaseModel
	CardID      string            `gorm:"type:uuid;not null;index:idx_applications_card_applicant,unique" json:"cardId"`
	ApplicantID string            `gorm:"type:uuid;not null;index:idx_applications_card_applicant,unique" json:"applicantId"`
	ScheduledAt *time.Time        `json:"scheduledAt"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`

	// Set once both feedbacks are in and points are credited. Guards
	// against a retried feedback request crediting twice.
	PointsAwarded bool `gorm:"default:false" json:"pointsAwarded"`

	// Relations
	Card      *InterviewCard `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"card,omitempty"`
	Applicant *User          `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"applicant,omitempty"`
	Feedbacks []Feedback     `gorm:"foreignKey:ApplicationID" json:"feedbacks,omitempty"`
}
