package services

import (
	"encoding/json"

	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type CardService interface {
	Create(actor auth.Actor, req *dto.CreateCardRequest) (*models.InterviewCard, error)
	GetByID(id string) (*models.InterviewCard, error)
	List(query *dto.CardListQuery) ([]models.InterviewCard, error)
	Update(actor auth.Actor, cardID string, req *dto.UpdateCardRequest) (*models.InterviewCard, error)
	Delete(actor auth.Actor, cardID string) error
}

type cardService struct {
	cardRepo      repositories.CardRepository
	pointsService PointsService
}

func NewCardService(cardRepo repositories.CardRepository, pointsService PointsService) CardService {
	return &cardService{
		cardRepo:      cardRepo,
		pointsService: pointsService,
	}
}

// Create создает карточку, предварительно проверив квоту автора.
// Списание квоты происходит после записи и не влияет на результат.
func (s *cardService) Create(actor auth.Actor, req *dto.CreateCardRequest) (*models.InterviewCard, error) {
	limits, err := s.pointsService.CheckInterviewLimit(actor)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !limits.CanCreate {
		return nil, apperrors.ErrInterviewLimit
	}

	stack, err := json.Marshal(req.TechStack)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	card := &models.InterviewCard{
		UserID:      actor.ID,
		Profession:  req.Profession,
		TechStack:   datatypes.JSON(stack),
		ScheduledAt: req.ScheduledAt,
		Status:      models.CardStatusOpen,
	}

	if err := s.cardRepo.Create(card); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.pointsService.UseInterview(actor)

	logger.Info("interview card created", "card_id", card.ID, "user_id", actor.ID)
	return card, nil
}

func (s *cardService) GetByID(id string) (*models.InterviewCard, error) {
	card, err := s.cardRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

func (s *cardService) List(query *dto.CardListQuery) ([]models.InterviewCard, error) {
	filter := repositories.CardFilter{
		TechStack: query.TechStack,
		UserID:    query.UserID,
	}
	if query.Status != "" {
		filter.Status = models.CardStatus(query.Status)
	}

	cards, err := s.cardRepo.List(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cards, nil
}

// Update меняет поля карточки. Разрешено владельцу и администратору.
func (s *cardService) Update(actor auth.Actor, cardID string, req *dto.UpdateCardRequest) (*models.InterviewCard, error) {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if card.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if req.Profession != nil {
		card.Profession = *req.Profession
	}
	if req.TechStack != nil {
		stack, err := json.Marshal(req.TechStack)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		card.TechStack = datatypes.JSON(stack)
	}
	if req.ScheduledAt != nil {
		card.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		status := models.CardStatus(*req.Status)
		if !models.ValidCardStatus(status) {
			return nil, apperrors.ErrInvalidCardStatus
		}
		card.Status = status
	}

	if err := s.cardRepo.Update(card); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return card, nil
}

// Delete удаляет карточку вместе с откликами и фидбеком по ней
func (s *cardService) Delete(actor auth.Actor, cardID string) error {
	card, err := s.cardRepo.FindByID(cardID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCardNotFound) {
			return apperrors.ErrCardNotFound
		}
		return apperrors.InternalError(err)
	}

	if card.UserID != actor.ID && !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}

	if err := s.cardRepo.Delete(cardID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("interview card deleted", "card_id", cardID, "actor_id", actor.ID)
	return nil
}
