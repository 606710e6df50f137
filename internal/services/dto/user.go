package dto

import "time"

type UserProfile struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Telegram           *string   `json:"telegram,omitempty"`
	Discord            *string   `json:"discord,omitempty"`
	Whatsapp           *string   `json:"whatsapp,omitempty"`
	Role               string    `json:"role"`
	Points             int       `json:"points"`
	FreeInterviewsUsed int       `json:"freeInterviewsUsed"`
	CreatedAt          time.Time `json:"createdAt"`
}

type UserListResponse struct {
	Users []UserProfile `json:"users"`
	Total int64         `json:"total"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Telegram *string `json:"telegram,omitempty"`
	Discord  *string `json:"discord,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// InterviewLimits - ответ движка лимитов. Для безлимитных субъектов
// Unlimited=true, а FreeInterviewsLeft смысла не несет.
type InterviewLimits struct {
	CanCreate             bool `json:"canCreate"`
	FreeInterviewsLeft    int  `json:"freeInterviewsLeft"`
	Unlimited             bool `json:"unlimited"`
	HasActiveSubscription bool `json:"hasActiveSubscription"`
}
