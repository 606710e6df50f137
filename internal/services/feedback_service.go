package services

import (
	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"
)

type FeedbackService interface {
	Create(actor auth.Actor, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	List(query *dto.FeedbackListQuery) ([]models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	appRepo       repositories.ApplicationRepository
	pointsService PointsService
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	appRepo repositories.ApplicationRepository,
	pointsService PointsService,
) FeedbackService {
	return &feedbackService{
		feedbackRepo:  feedbackRepo,
		appRepo:       appRepo,
		pointsService: pointsService,
	}
}

// Create принимает фидбек от участника собеседования в адрес второго
// участника. После записи делается попытка начислить баллы - она
// сработает, когда собеседование завершено и фидбек стал обоюдным.
func (s *feedbackService) Create(actor auth.Actor, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	app, err := s.appRepo.FindByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	ownerID := ""
	if app.Card != nil {
		ownerID = app.Card.UserID
	}

	if actor.ID != ownerID && actor.ID != app.ApplicantID {
		return nil, apperrors.ErrNotParticipant
	}

	// Адресат - всегда второй участник
	expectedRecipient := ownerID
	if actor.ID == ownerID {
		expectedRecipient = app.ApplicantID
	}
	if req.ToUserID != expectedRecipient {
		return nil, apperrors.ErrInvalidRecipient
	}

	existing, err := s.feedbackRepo.FindByTriple(app.ID, actor.ID, req.ToUserID)
	if err != nil && !apperrors.Is(err, repositories.ErrFeedbackNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrFeedbackExists
	}

	feedback := &models.Feedback{
		ApplicationID: app.ID,
		FromUserID:    actor.ID,
		ToUserID:      req.ToUserID,
		Message:       req.Message,
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Начисление имеет смысл только когда фидбек стал обоюдным
	count, err := s.feedbackRepo.CountByApplication(app.ID)
	if err == nil && count >= 2 {
		if err := s.pointsService.AwardPointsForCompletedInterview(app.ID); err != nil {
			logger.Error("award after feedback failed", "application_id", app.ID, "error", err)
		}
	}

	logger.Info("feedback submitted", "application_id", app.ID, "from", actor.ID, "to", req.ToUserID)
	return feedback, nil
}

func (s *feedbackService) List(query *dto.FeedbackListQuery) ([]models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.List(repositories.FeedbackFilter{
		ToUserID:      query.UserID,
		ApplicationID: query.ApplicationID,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return feedbacks, nil
}
