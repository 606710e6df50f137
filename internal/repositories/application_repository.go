package repositories

import (
	"errors"

	"supermock_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyAwarded      = errors.New("points already awarded for this application")
)

type ApplicationFilter struct {
	ApplicantID string
	CardID      string
}

type ApplicationRepository interface {
	CreateWithCardFlip(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByCardAndApplicant(cardID, applicantID string) (*models.Application, error)
	List(filter ApplicationFilter) ([]models.Application, error)
	Update(app *models.Application) error
	CreditInterviewPoints(appID, ownerID, applicantID string, amount int) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// CreateWithCardFlip создает отклик и переводит карточку в IN_PROGRESS
// одной транзакцией
func (r *ApplicationRepositoryImpl) CreateWithCardFlip(app *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		return tx.Model(&models.InterviewCard{}).Where("id = ?", app.CardID).
			Update("status", models.CardStatusInProgress).Error
	})
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Card").Preload("Card.User").Preload("Applicant").Preload("Feedbacks").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByCardAndApplicant(cardID, applicantID string) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "card_id = ? AND applicant_id = ?", cardID, applicantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) List(filter ApplicationFilter) ([]models.Application, error) {
	query := r.db.Preload("Card").Preload("Card.User").Preload("Applicant").
		Order("created_at DESC")

	if filter.ApplicantID != "" {
		query = query.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.CardID != "" {
		query = query.Where("card_id = ?", filter.CardID)
	}

	var apps []models.Application
	err := query.Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Update(app *models.Application) error {
	result := r.db.Model(app).Updates(map[string]interface{}{
		"scheduled_at": app.ScheduledAt,
		"status":       app.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// CreditInterviewPoints начисляет баллы обоим участникам и помечает
// отклик как оплаченный одной транзакцией. Условие points_awarded=false
// в UPDATE защищает от двойного начисления при гонке повторных запросов.
func (r *ApplicationRepositoryImpl) CreditInterviewPoints(appID, ownerID, applicantID string, amount int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ? AND points_awarded = ?", appID, false).
			Update("points_awarded", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyAwarded
		}

		if err := tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("points", gorm.Expr("points + ?", amount)).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", applicantID).
			Update("points", gorm.Expr("points + ?", amount)).Error
	})
}
