package models

type Feedback struct {
	BaseModel
	ApplicationID string `gorm:"type:uuid;not null;index:idx_feedbacks_app_from_to,unique" json:"applicationId"`
	FromUserID    string `gorm:"type:uuid;not null;index:idx_feedbacks_app_from_to,unique" json:"fromUserId"`
	ToUserID      string `gorm:"type:uuid;not null;index:idx_feedbacks_app_from_to,unique" json:"toUserId"`
	Message       string `gorm:"type:text;not null" json:"message"`

	// Relations
	Application *Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"application,omitempty"`
	FromUser    *User        `gorm:"foreignKey:FromUserID" json:"fromUser,omitempty"`
	ToUser      *User        `gorm:"foreignKey:ToUserID" json:"toUser,omitempty"`
}
