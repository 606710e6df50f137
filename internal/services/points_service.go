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

const (
	// FreeInterviewsLimit - пожизненная квота карточек без подписки
	FreeInterviewsLimit = 3
	// PointsPerInterview - начисление каждому участнику за завершенное
	// собеседование с обоюдным фидбеком
	PointsPerInterview = 1
)

type PointsService interface {
	CheckInterviewLimit(actor auth.Actor) (*dto.InterviewLimits, error)
	UseInterview(actor auth.Actor)
	AwardPoints(userID string, amount int) error
	AwardPointsForCompletedInterview(applicationID string) error
}

type pointsService struct {
	userRepo repositories.UserRepository
	appRepo  repositories.ApplicationRepository
}

func NewPointsService(
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
) PointsService {
	return &pointsService{
		userRepo: userRepo,
		appRepo:  appRepo,
	}
}

// CheckInterviewLimit решает, может ли субъект создать еще одну
// карточку. Виртуальный админ и роль ADMIN безлимитны; неизвестный
// пользователь получает отказ (fail closed).
func (s *pointsService) CheckInterviewLimit(actor auth.Actor) (*dto.InterviewLimits, error) {
	if actor.Unlimited() {
		return unlimitedLimits(), nil
	}

	user, err := s.userRepo.FindByID(actor.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return &dto.InterviewLimits{CanCreate: false}, nil
		}
		return nil, err
	}

	if user.Role == models.UserRoleAdmin {
		return unlimitedLimits(), nil
	}

	hasActive := hasActiveSubscription(user, time.Now())

	freeLeft := FreeInterviewsLimit - user.FreeInterviewsUsed
	if freeLeft < 0 {
		freeLeft = 0
	}

	return &dto.InterviewLimits{
		CanCreate:             hasActive || freeLeft > 0,
		FreeInterviewsLeft:    freeLeft,
		HasActiveSubscription: hasActive,
	}, nil
}

// UseInterview списывает одну единицу квоты после успешного создания
// карточки. Любая ошибка здесь логируется и глотается: создание
// карточки не откатывается из-за сбоя бухгалтерии.
func (s *pointsService) UseInterview(actor auth.Actor) {
	if actor.Unlimited() {
		return
	}

	user, err := s.userRepo.FindByID(actor.ID)
	if err != nil {
		logger.Warn("useInterview: user lookup failed", "user_id", actor.ID, "error", err)
		return
	}

	if user.Role == models.UserRoleAdmin {
		return
	}

	if hasActiveSubscription(user, time.Now()) {
		return
	}

	if err := s.userRepo.IncrementFreeInterviews(user.ID); err != nil {
		logger.Error("useInterview: failed to increment quota", "user_id", user.ID, "error", err)
	}
}

// AwardPoints добавляет amount к балансу; no-op если пользователя нет
func (s *pointsService) AwardPoints(userID string, amount int) error {
	err := s.userRepo.AddPoints(userID, amount)
	if apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil
	}
	return err
}

// AwardPointsForCompletedInterview начисляет по одному баллу владельцу
// карточки и откликнувшемуся, когда собеседование завершено и обе
// стороны оставили фидбек. Повторный вызов ничего не начисляет:
// отклик помечается флагом points_awarded.
func (s *pointsService) AwardPointsForCompletedInterview(applicationID string) error {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil
		}
		return err
	}

	if app.Status != models.ApplicationStatusCompleted {
		return nil
	}

	if len(app.Feedbacks) < 2 {
		return nil
	}

	if app.PointsAwarded || app.Card == nil {
		return nil
	}

	err = s.appRepo.CreditInterviewPoints(app.ID, app.Card.UserID, app.ApplicantID, PointsPerInterview)
	if apperrors.Is(err, repositories.ErrAlreadyAwarded) {
		return nil
	}
	return err
}

func unlimitedLimits() *dto.InterviewLimits {
	return &dto.InterviewLimits{
		CanCreate:             true,
		Unlimited:             true,
		HasActiveSubscription: true,
	}
}

func hasActiveSubscription(user *models.User, now time.Time) bool {
	for i := range user.Subscriptions {
		if user.Subscriptions[i].IsActive(now) {
			return true
		}
	}
	return false
}
