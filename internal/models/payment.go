package models

type Payment struct {
	BaseModel
	UserID    string        `gorm:"type:uuid;not null;index" json:"userId"`
	Amount    int           `gorm:"not null;check:amount > 0" json:"amount"`
	Status    PaymentStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	AdminNote *string       `json:"adminNote,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
