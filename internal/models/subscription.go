package models

import "time"

type Subscription struct {
	BaseModel
	UserID    string             `gorm:"type:uuid;not null;index" json:"userId"`
	StartDate time.Time          `gorm:"not null" json:"startDate"`
	EndDate   time.Time          `gorm:"not null;index" json:"endDate"`
	Status    SubscriptionStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// IsActive is the single definition of "currently active": the stored
// status plus a live date comparison, so a stale ACTIVE row past its
// end date never counts.
func (s *Subscription) IsActive(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && !s.EndDate.Before(now)
}
