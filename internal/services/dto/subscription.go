package dto

type PurchaseSubscriptionRequest struct {
	Weeks int `json:"weeks" validate:"required,min=1,max=52"`
}
