package repositories

import (
	"errors"

	"supermock_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackFilter struct {
	ToUserID      string
	ApplicationID string
}

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	FindByTriple(applicationID, fromUserID, toUserID string) (*models.Feedback, error)
	List(filter FeedbackFilter) ([]models.Feedback, error)
	CountByApplication(applicationID string) (int64, error)
}

type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) FindByTriple(applicationID, fromUserID, toUserID string) (*models.Feedback, error) {
	var fb models.Feedback
	err := r.db.First(&fb, "application_id = ? AND from_user_id = ? AND to_user_id = ?",
		applicationID, fromUserID, toUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &fb, nil
}

func (r *FeedbackRepositoryImpl) List(filter FeedbackFilter) ([]models.Feedback, error) {
	query := r.db.Preload("FromUser").Preload("ToUser").Preload("Application").Preload("Application.Card").
		Order("created_at DESC")

	if filter.ToUserID != "" {
		query = query.Where("to_user_id = ?", filter.ToUserID)
	}
	if filter.ApplicationID != "" {
		query = query.Where("application_id = ?", filter.ApplicationID)
	}

	var feedbacks []models.Feedback
	err := query.Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepositoryImpl) CountByApplication(applicationID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Feedback{}).Where("application_id = ?", applicationID).Count(&count).Error
	return count, err
}
