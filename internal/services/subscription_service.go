package services

import (
	"time"

	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"
)

// PointsPerWeek - стоимость одной недели подписки в баллах
const PointsPerWeek = 100

type SubscriptionService interface {
	Purchase(actor auth.Actor, req *dto.PurchaseSubscriptionRequest) (*models.Subscription, error)
	ListByUser(actor auth.Actor) ([]models.Subscription, error)
	ExpireStale(now time.Time) (int64, error)
}

type subscriptionService struct {
	subRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subRepo repositories.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subRepo: subRepo}
}

// Purchase списывает weeks*100 баллов и создает активную подписку на
// weeks*7 дней от момента покупки. Списание и запись атомарны, при
// нехватке баллов транзакция не проходит.
func (s *subscriptionService) Purchase(actor auth.Actor, req *dto.PurchaseSubscriptionRequest) (*models.Subscription, error) {
	cost := req.Weeks * PointsPerWeek
	now := time.Now()

	sub := &models.Subscription{
		UserID:    actor.ID,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, req.Weeks*7),
		Status:    models.SubscriptionStatusActive,
	}

	if err := s.subRepo.Purchase(sub, cost); err != nil {
		if apperrors.Is(err, repositories.ErrInsufficientPoints) {
			return nil, apperrors.ErrInsufficientPoints
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("subscription purchased", "subscription_id", sub.ID, "user_id", actor.ID, "weeks", req.Weeks, "cost", cost)
	return sub, nil
}

func (s *subscriptionService) ListByUser(actor auth.Actor) ([]models.Subscription, error) {
	subs, err := s.subRepo.FindByUser(actor.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subs, nil
}

// ExpireStale переводит просроченные подписки в EXPIRED; вызывается
// фоновым воркером.
func (s *subscriptionService) ExpireStale(now time.Time) (int64, error) {
	return s.subRepo.MarkExpired(now)
}
