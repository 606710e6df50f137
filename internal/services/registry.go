package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	PointsService       PointsService
	CardService         CardService
	ApplicationService  ApplicationService
	FeedbackService     FeedbackService
	PaymentService      PaymentService
	SubscriptionService SubscriptionService
}
