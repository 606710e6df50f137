package repositories

import (
	"errors"
	"time"

	"supermock_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInsufficientPoints = errors.New("insufficient points")

type SubscriptionRepository interface {
	Purchase(sub *models.Subscription, cost int) error
	FindByUser(userID string) ([]models.Subscription, error)
	MarkExpired(now time.Time) (int64, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

// Purchase списывает баллы и создает подписку одной транзакцией.
// Условие points >= cost в UPDATE защищает от ухода баланса в минус
// при конкурентных покупках.
func (r *SubscriptionRepositoryImpl) Purchase(sub *models.Subscription, cost int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", sub.UserID, cost).
			Update("points", gorm.Expr("points - ?", cost))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientPoints
		}

		return tx.Create(sub).Error
	})
}

func (r *SubscriptionRepositoryImpl) FindByUser(userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// MarkExpired переводит просроченные ACTIVE записи в EXPIRED.
// Чистая бухгалтерия: активность всегда проверяется по дате.
func (r *SubscriptionRepositoryImpl) MarkExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Subscription{}).
		Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, now).
		Update("status", models.SubscriptionStatusExpired)
	return result.RowsAffected, result.Error
}
