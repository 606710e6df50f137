package validator

import (
	"log"

	"supermock_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные правила валидации,
// основанные на statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-card-status", validateCardStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-payment-status", validatePaymentStatus)
}

func validateCardStatus(fl validator.FieldLevel) bool {
	return models.ValidCardStatus(models.CardStatus(fl.Field().String()))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	return models.ValidPaymentStatus(models.PaymentStatus(fl.Field().String()))
}
