package repositories

import (
	"errors"
	"fmt"
	"strings"

	"supermock_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

type CardFilter struct {
	TechStack string
	Status    models.CardStatus
	UserID    string
}

type CardRepository interface {
	Create(card *models.InterviewCard) error
	FindByID(id string) (*models.InterviewCard, error)
	List(filter CardFilter) ([]models.InterviewCard, error)
	Update(card *models.InterviewCard) error
	Delete(cardID string) error
}

type CardRepositoryImpl struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &CardRepositoryImpl{db: db}
}

func (r *CardRepositoryImpl) Create(card *models.InterviewCard) error {
	return r.db.Create(card).Error
}

func (r *CardRepositoryImpl) FindByID(id string) (*models.InterviewCard, error) {
	var card models.InterviewCard
	err := r.db.Preload("User").Preload("Applications").Preload("Applications.Applicant").
		First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepositoryImpl) List(filter CardFilter) ([]models.InterviewCard, error) {
	query := r.db.Preload("User").Preload("Applications").Order("created_at DESC")

	if filter.TechStack != "" {
		// tech_stack хранится как JSONB массив строк
		needle := fmt.Sprintf(`["%s"]`, strings.ReplaceAll(filter.TechStack, `"`, ``))
		query = query.Where("tech_stack @> ?", needle)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var cards []models.InterviewCard
	err := query.Find(&cards).Error
	return cards, err
}

func (r *CardRepositoryImpl) Update(card *models.InterviewCard) error {
	result := r.db.Model(card).Updates(map[string]interface{}{
		"profession":   card.Profession,
		"tech_stack":   card.TechStack,
		"scheduled_at": card.ScheduledAt,
		"status":       card.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete удаляет карточку вместе с откликами и фидбеком
func (r *CardRepositoryImpl) Delete(cardID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var appIDs []string
		if err := tx.Model(&models.Application{}).Where("card_id = ?", cardID).
			Pluck("id", &appIDs).Error; err != nil {
			return err
		}

		if len(appIDs) > 0 {
			if err := tx.Where("application_id IN ?", appIDs).Delete(&models.Feedback{}).Error; err != nil {
				return err
			}
			if err := tx.Where("card_id = ?", cardID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", cardID).Delete(&models.InterviewCard{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}
		return nil
	})
}
