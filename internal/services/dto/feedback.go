package dto

type CreateFeedbackRequest struct {
	ApplicationID string `json:"applicationId" validate:"required,uuid"`
	ToUserID      string `json:"toUserId" validate:"required,uuid"`
	Message       string `json:"message" validate:"required,min=1"`
}

type FeedbackListQuery struct {
	UserID        string `form:"userId" validate:"omitempty,uuid"`
	ApplicationID string `form:"applicationId" validate:"omitempty,uuid"`
}
