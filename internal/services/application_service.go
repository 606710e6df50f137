package services

import (
	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"
)

type ApplicationService interface {
	Create(actor auth.Actor, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(actor auth.Actor, id string) (*models.Application, error)
	List(query *dto.ApplicationListQuery) ([]models.Application, error)
	Update(actor auth.Actor, applicationID string, req *dto.UpdateApplicationRequest) (*models.Application, error)
}

type applicationService struct {
	appRepo       repositories.ApplicationRepository
	cardRepo      repositories.CardRepository
	pointsService PointsService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	cardRepo repositories.CardRepository,
	pointsService PointsService,
) ApplicationService {
	return &applicationService{
		appRepo:       appRepo,
		cardRepo:      cardRepo,
		pointsService: pointsService,
	}
}

// Create записывает отклик и переводит карточку в IN_PROGRESS одной
// транзакцией. Откликнуться можно только на чужую открытую карточку
// и только один раз.
func (s *applicationService) Create(actor auth.Actor, req *dto.CreateApplicationRequest) (*models.Application, error) {
	card, err := s.cardRepo.FindByID(req.CardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if card.UserID == actor.ID {
		return nil, apperrors.ErrOwnCard
	}
	if card.Status != models.CardStatusOpen {
		return nil, apperrors.ErrCardNotOpen
	}

	existing, err := s.appRepo.FindByCardAndApplicant(card.ID, actor.ID)
	if err != nil && !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrApplicationExists
	}

	app := &models.Application{
		CardID:      card.ID,
		ApplicantID: actor.ID,
		ScheduledAt: req.ScheduledAt,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.appRepo.CreateWithCardFlip(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application created", "application_id", app.ID, "card_id", card.ID, "applicant_id", actor.ID)
	return s.GetByID(actor, app.ID)
}

func (s *applicationService) GetByID(actor auth.Actor, id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

func (s *applicationService) List(query *dto.ApplicationListQuery) ([]models.Application, error) {
	apps, err := s.appRepo.List(repositories.ApplicationFilter{
		ApplicantID: query.UserID,
		CardID:      query.CardID,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// Update меняет расписание и статус отклика. ACCEPTED может выставить
// только владелец карточки или админ; остальные переходы доступны
// обоим участникам. Карточку отклик не трогает: ее завершает владелец
// явным редактированием. После завершения отклика делается попытка
// начисления баллов.
func (s *applicationService) Update(actor auth.Actor, applicationID string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	isOwner := app.Card != nil && app.Card.UserID == actor.ID
	isApplicant := app.ApplicantID == actor.ID
	if !isOwner && !isApplicant && !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if req.ScheduledAt != nil {
		app.ScheduledAt = req.ScheduledAt
	}

	completed := false
	if req.Status != nil {
		status := models.ApplicationStatus(*req.Status)
		if !models.ValidApplicationStatus(status) {
			return nil, apperrors.NewBadRequestError("Invalid application status")
		}
		if status == models.ApplicationStatusAccepted && !isOwner && !actor.IsAdmin() {
			return nil, apperrors.ErrAcceptOwnerOnly
		}
		app.Status = status
		completed = status == models.ApplicationStatusCompleted
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if completed {
		if err := s.pointsService.AwardPointsForCompletedInterview(app.ID); err != nil {
			logger.Error("award after completion failed", "application_id", app.ID, "error", err)
		}
	}

	return s.GetByID(actor, app.ID)
}
