package repositories

import (
	"errors"

	"supermock_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentResolved = errors.New("payment already processed")
)

type PaymentFilter struct {
	UserID string
	Status models.PaymentStatus
}

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	List(filter PaymentFilter) ([]models.Payment, error)
	Resolve(paymentID string, status models.PaymentStatus, adminNote *string) (*models.Payment, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("User").First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) List(filter PaymentFilter) ([]models.Payment, error) {
	query := r.db.Preload("User").Order("created_at DESC")

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var payments []models.Payment
	err := query.Find(&payments).Error
	return payments, err
}

// Resolve обрабатывает платеж ровно один раз: смена статуса и
// начисление баллов (для APPROVED) идут одной транзакцией. Условие
// status=PENDING в UPDATE отклоняет повторную обработку под гонкой.
func (r *PaymentRepositoryImpl) Resolve(paymentID string, status models.PaymentStatus, adminNote *string) (*models.Payment, error) {
	var payment models.Payment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		fields := map[string]interface{}{"status": status}
		if adminNote != nil {
			fields["admin_note"] = adminNote
		}

		result := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentStatusPending).
			Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPaymentResolved
		}

		if status == models.PaymentStatusApproved {
			if err := tx.Model(&models.User{}).Where("id = ?", payment.UserID).
				Update("points", gorm.Expr("points + ?", payment.Amount)).Error; err != nil {
				return err
			}
		}

		payment.Status = status
		payment.AdminNote = adminNote
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(payment.ID)
}
