package models

import (
	"time"

	"gorm.io/datatypes"
)

type InterviewCard struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;not null;index" json:"userId"`
	Profession  string         `gorm:"not null" json:"profession"`
	TechStack   datatypes.JSON `gorm:"type:jsonb" json:"techStack"`
	ScheduledAt time.Time      `gorm:"index" json:"scheduledAt"`
	Status      CardStatus     `gorm:"type:varchar(20);default:'OPEN';index" json:"status"`

	// Relations
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Applications []Application `gorm:"foreignKey:CardID" json:"applications,omitempty"`
}
