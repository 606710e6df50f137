package dto

import "time"

type CreateApplicationRequest struct {
	CardID      string     `json:"cardId" validate:"required,uuid"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

type UpdateApplicationRequest struct {
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,is-application-status"`
}

type ApplicationListQuery struct {
	UserID string `form:"userId" validate:"omitempty,uuid"`
	CardID string `form:"cardId" validate:"omitempty,uuid"`
}
