package services

import (
	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"
)

type PaymentService interface {
	Create(actor auth.Actor, req *dto.CreatePaymentRequest) (*models.Payment, error)
	List(actor auth.Actor, query *dto.PaymentListQuery) ([]models.Payment, error)
	Resolve(actor auth.Actor, paymentID string, req *dto.ResolvePaymentRequest) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

// Create регистрирует заявку на пополнение. Баллы не двигаются до
// решения администратора.
func (s *paymentService) Create(actor auth.Actor, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	payment := &models.Payment{
		UserID: actor.ID,
		Amount: req.Amount,
		Status: models.PaymentStatusPending,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("payment requested", "payment_id", payment.ID, "user_id", actor.ID, "amount", req.Amount)
	return payment, nil
}

// List возвращает админу любые платежи по фильтру, обычному
// пользователю - только его собственные.
func (s *paymentService) List(actor auth.Actor, query *dto.PaymentListQuery) ([]models.Payment, error) {
	filter := repositories.PaymentFilter{UserID: query.UserID}
	if query.Status != "" {
		filter.Status = models.PaymentStatus(query.Status)
	}
	if !actor.IsAdmin() {
		filter.UserID = actor.ID
	}

	payments, err := s.paymentRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

// Resolve - единственный переход платежа. Доступен только админу,
// работает только над PENDING; APPROVED зачисляет amount на баланс
// в той же транзакции.
func (s *paymentService) Resolve(actor auth.Actor, paymentID string, req *dto.ResolvePaymentRequest) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	status := models.PaymentStatus(req.Status)
	if status != models.PaymentStatusApproved && status != models.PaymentStatusRejected {
		return nil, apperrors.NewBadRequestError("Invalid payment status")
	}

	payment, err := s.paymentRepo.Resolve(paymentID, status, req.AdminNote)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrPaymentNotFound):
			return nil, apperrors.ErrPaymentNotFound
		case apperrors.Is(err, repositories.ErrPaymentResolved):
			return nil, apperrors.ErrPaymentResolved
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	logger.Info("payment resolved", "payment_id", paymentID, "status", status, "admin_id", actor.ID)
	return payment, nil
}
