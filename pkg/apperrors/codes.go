package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Ресурсы
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInterviewLimit     ErrorCode = "INTERVIEW_LIMIT_REACHED"
	CodeCardNotOpen        ErrorCode = "CARD_NOT_OPEN"
	CodeOwnCard            ErrorCode = "CANNOT_APPLY_TO_OWN_CARD"
	CodeDuplicate          ErrorCode = "ALREADY_EXISTS"
	CodePaymentResolved    ErrorCode = "PAYMENT_ALREADY_PROCESSED"
	CodeInsufficientPoints ErrorCode = "INSUFFICIENT_POINTS"
	CodeNotParticipant     ErrorCode = "NOT_A_PARTICIPANT"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
