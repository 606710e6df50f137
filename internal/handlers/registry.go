package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	CardHandler         *CardHandler
	ApplicationHandler  *ApplicationHandler
	FeedbackHandler     *FeedbackHandler
	PaymentHandler      *PaymentHandler
	SubscriptionHandler *SubscriptionHandler
}
