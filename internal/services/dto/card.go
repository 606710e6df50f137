package dto

import "time"

type CreateCardRequest struct {
	Profession  string    `json:"profession" validate:"required,min=1"`
	TechStack   []string  `json:"techStack" validate:"required,min=1,dive,min=1"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type UpdateCardRequest struct {
	Profession  *string    `json:"profession,omitempty" validate:"omitempty,min=1"`
	TechStack   []string   `json:"techStack,omitempty" validate:"omitempty,min=1,dive,min=1"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,is-card-status"`
}

type CardListQuery struct {
	TechStack string `form:"techStack"`
	Status    string `form:"status" validate:"omitempty,is-card-status"`
	UserID    string `form:"userId" validate:"omitempty,uuid"`
}
