package models

type UserRole string
type CardStatus string
type ApplicationStatus string
type SubscriptionStatus string
type PaymentStatus string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"

	CardStatusOpen       CardStatus = "OPEN"
	CardStatusInProgress CardStatus = "IN_PROGRESS"
	CardStatusCompleted  CardStatus = "COMPLETED"
	CardStatusCancelled  CardStatus = "CANCELLED"

	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusCompleted ApplicationStatus = "COMPLETED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"

	SubscriptionStatusActive  SubscriptionStatus = "ACTIVE"
	SubscriptionStatusExpired SubscriptionStatus = "EXPIRED"

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// ValidCardStatus reports whether s is one of the card lifecycle states.
func ValidCardStatus(s CardStatus) bool {
	switch s {
	case CardStatusOpen, CardStatusInProgress, CardStatusCompleted, CardStatusCancelled:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is one of the application lifecycle states.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusCompleted, ApplicationStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the payment states.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return true
	}
	return false
}
