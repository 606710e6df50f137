package dto

type CreatePaymentRequest struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

type ResolvePaymentRequest struct {
	Status    string  `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	AdminNote *string `json:"adminNote,omitempty"`
}

type PaymentListQuery struct {
	UserID string `form:"userId" validate:"omitempty,uuid"`
	Status string `form:"status" validate:"omitempty,is-payment-status"`
}
