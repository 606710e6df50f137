package models

type User struct {
	BaseModel
	Email              string   `gorm:"uniqueIndex;not null" json:"email"`
	Name               string   `json:"name"`
	Telegram           *string  `json:"telegram,omitempty"`
	Discord            *string  `json:"discord,omitempty"`
	Whatsapp           *string  `json:"whatsapp,omitempty"`
	PasswordHash       string   `gorm:"not null" json:"-"`
	Role               UserRole `gorm:"type:varchar(20);default:'USER'" json:"role"`
	Points             int      `gorm:"default:0" json:"points"`
	FreeInterviewsUsed int      `gorm:"default:0" json:"freeInterviewsUsed"`

	// Relations
	Cards         []InterviewCard `gorm:"foreignKey:UserID" json:"cards,omitempty"`
	Applications  []Application   `gorm:"foreignKey:ApplicantID" json:"applications,omitempty"`
	Subscriptions []Subscription  `gorm:"foreignKey:UserID" json:"subscriptions,omitempty"`
	Payments      []Payment       `gorm:"foreignKey:UserID" json:"payments,omitempty"`
}
