package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Карточки
	ErrCardNotFound      = New(CodeNotFound, "Card not found", http.StatusNotFound)
	ErrCardNotOpen       = New(CodeCardNotOpen, "Card is not accepting applications", http.StatusBadRequest)
	ErrOwnCard           = New(CodeOwnCard, "Cannot apply to your own card", http.StatusBadRequest)
	ErrInterviewLimit    = New(CodeInterviewLimit, "Free interview limit reached, subscription required", http.StatusForbidden)
	ErrInvalidCardStatus = New(CodeValidationFailed, "Invalid card status", http.StatusBadRequest)

	// Отклики
	ErrApplicationNotFound = New(CodeNotFound, "Application not found", http.StatusNotFound)
	ErrApplicationExists   = New(CodeDuplicate, "You have already applied to this card", http.StatusBadRequest)
	ErrAcceptOwnerOnly     = New(CodeForbidden, "Only the card owner can accept an application", http.StatusForbidden)

	// Фидбек
	ErrFeedbackExists   = New(CodeDuplicate, "Feedback already submitted for this interview", http.StatusBadRequest)
	ErrNotParticipant   = New(CodeNotParticipant, "You are not a participant of this interview", http.StatusForbidden)
	ErrInvalidRecipient = New(CodeValidationFailed, "Invalid feedback recipient", http.StatusBadRequest)

	// Платежи и подписки
	ErrPaymentNotFound    = New(CodeNotFound, "Payment not found", http.StatusNotFound)
	ErrPaymentResolved    = New(CodePaymentResolved, "Payment already processed", http.StatusBadRequest)
	ErrInsufficientPoints = New(CodeInsufficientPoints, "Not enough points to buy a subscription", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
