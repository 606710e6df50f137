package services

import (
	"testing"

	"supermock_backend/internal/auth"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeedbackRepo - репозиторий фидбека в памяти
type fakeFeedbackRepo struct {
	feedbacks []*models.Feedback
}

func (r *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = "fb-" + feedback.FromUserID
	}
	r.feedbacks = append(r.feedbacks, feedback)
	return nil
}

func (r *fakeFeedbackRepo) FindByTriple(applicationID, fromUserID, toUserID string) (*models.Feedback, error) {
	for _, f := range r.feedbacks {
		if f.ApplicationID == applicationID && f.FromUserID == fromUserID && f.ToUserID == toUserID {
			return f, nil
		}
	}
	return nil, repositories.ErrFeedbackNotFound
}

func (r *fakeFeedbackRepo) List(filter repositories.FeedbackFilter) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.feedbacks {
		if filter.ToUserID != "" && f.ToUserID != filter.ToUserID {
			continue
		}
		if filter.ApplicationID != "" && f.ApplicationID != filter.ApplicationID {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) CountByApplication(applicationID string) (int64, error) {
	var count int64
	for _, f := range r.feedbacks {
		if f.ApplicationID == applicationID {
			count++
		}
	}
	return count, nil
}

func feedbackFixture() (*fakeFeedbackRepo, *fakeAppRepo, FeedbackService) {
	card := &models.InterviewCard{UserID: "owner"}
	card.ID = "c1"

	app := &models.Application{
		CardID:      "c1",
		ApplicantID: "applicant",
		Status:      models.ApplicationStatusCompleted,
		Card:        card,
	}
	app.ID = "a1"

	feedbackRepo := &fakeFeedbackRepo{}
	appRepo := newFakeAppRepo(app)
	svc := NewFeedbackService(feedbackRepo, appRepo, NewPointsService(newFakeUserRepo(), appRepo))
	return feedbackRepo, appRepo, svc
}

func TestFeedbackCreate_Success(t *testing.T) {
	_, _, svc := feedbackFixture()

	fb, err := svc.Create(auth.Actor{ID: "applicant", Role: models.UserRoleUser}, &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "owner",
		Message:       "Great session",
	})
	require.NoError(t, err)
	assert.Equal(t, "applicant", fb.FromUserID)
	assert.Equal(t, "owner", fb.ToUserID)
}

func TestFeedbackCreate_Outsider(t *testing.T) {
	_, _, svc := feedbackFixture()

	_, err := svc.Create(auth.Actor{ID: "stranger", Role: models.UserRoleUser}, &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "owner",
		Message:       "Was not invited",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)
}

func TestFeedbackCreate_WrongRecipient(t *testing.T) {
	_, _, svc := feedbackFixture()

	// Участник пытается адресовать фидбек самому себе
	_, err := svc.Create(auth.Actor{ID: "applicant", Role: models.UserRoleUser}, &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "applicant",
		Message:       "I did great",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRecipient)
}

func TestFeedbackCreate_Duplicate(t *testing.T) {
	_, _, svc := feedbackFixture()

	req := &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "owner",
		Message:       "Great session",
	}
	actor := auth.Actor{ID: "applicant", Role: models.UserRoleUser}

	_, err := svc.Create(actor, req)
	require.NoError(t, err)

	_, err = svc.Create(actor, req)
	assert.ErrorIs(t, err, apperrors.ErrFeedbackExists)
}

// TestFeedbackCreate_TriggersAward - второй фидбек по завершенному
// собеседованию запускает начисление
func TestFeedbackCreate_TriggersAward(t *testing.T) {
	_, appRepo, svc := feedbackFixture()

	_, err := svc.Create(auth.Actor{ID: "applicant", Role: models.UserRoleUser}, &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "owner",
		Message:       "Good interviewer",
	})
	require.NoError(t, err)
	assert.Empty(t, appRepo.creditCalls)

	// Эмулируем подгрузку фидбека на отклике
	appRepo.apps["a1"].Feedbacks = []models.Feedback{{}, {}}

	_, err = svc.Create(auth.Actor{ID: "owner", Role: models.UserRoleUser}, &dto.CreateFeedbackRequest{
		ApplicationID: "a1",
		ToUserID:      "applicant",
		Message:       "Good candidate",
	})
	require.NoError(t, err)
	assert.Len(t, appRepo.creditCalls, 1)
}
