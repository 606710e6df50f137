package services

import (
	"testing"
	"time"

	"supermock_backend/internal/auth"
	"supermock_backend/internal/models"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardRequest() *dto.CreateCardRequest {
	return &dto.CreateCardRequest{
		Profession:  "Backend Developer",
		TechStack:   []string{"Go", "PostgreSQL"},
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}
}

func TestCardCreate_ConsumesQuota(t *testing.T) {
	userRepo := newFakeUserRepo(userWith("u1", 0))
	cardRepo := newFakeCardRepo()
	svc := NewCardService(cardRepo, NewPointsService(userRepo, newFakeAppRepo()))

	card, err := svc.Create(auth.Actor{ID: "u1", Role: models.UserRoleUser}, newCardRequest())
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusOpen, card.Status)
	assert.Equal(t, "u1", card.UserID)
	assert.Equal(t, 1, userRepo.users["u1"].FreeInterviewsUsed)
}

func TestCardCreate_LimitReached(t *testing.T) {
	userRepo := newFakeUserRepo(userWith("u1", 3))
	svc := NewCardService(newFakeCardRepo(), NewPointsService(userRepo, newFakeAppRepo()))

	_, err := svc.Create(auth.Actor{ID: "u1", Role: models.UserRoleUser}, newCardRequest())
	assert.ErrorIs(t, err, apperrors.ErrInterviewLimit)
}

func TestCardCreate_SubscriberSkipsQuota(t *testing.T) {
	userRepo := newFakeUserRepo(userWith("u1", 3, activeSub()))
	svc := NewCardService(newFakeCardRepo(), NewPointsService(userRepo, newFakeAppRepo()))

	_, err := svc.Create(auth.Actor{ID: "u1", Role: models.UserRoleUser}, newCardRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, userRepo.users["u1"].FreeInterviewsUsed)
}

func TestCardUpdate_StrangerForbidden(t *testing.T) {
	card := &models.InterviewCard{UserID: "owner", Profession: "Dev", Status: models.CardStatusOpen}
	card.ID = "c1"
	svc := NewCardService(newFakeCardRepo(card), NewPointsService(newFakeUserRepo(), newFakeAppRepo()))

	newProfession := "Hacked"
	_, err := svc.Update(auth.Actor{ID: "stranger", Role: models.UserRoleUser}, "c1", &dto.UpdateCardRequest{Profession: &newProfession})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCardUpdate_AdminAllowed(t *testing.T) {
	card := &models.InterviewCard{UserID: "owner", Profession: "Dev", Status: models.CardStatusOpen}
	card.ID = "c1"
	svc := NewCardService(newFakeCardRepo(card), NewPointsService(newFakeUserRepo(), newFakeAppRepo()))

	status := string(models.CardStatusCancelled)
	updated, err := svc.Update(auth.Actor{ID: "someone", Role: models.UserRoleAdmin}, "c1", &dto.UpdateCardRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusCancelled, updated.Status)
}

func TestCardUpdate_InvalidStatus(t *testing.T) {
	card := &models.InterviewCard{UserID: "owner", Status: models.CardStatusOpen}
	card.ID = "c1"
	svc := NewCardService(newFakeCardRepo(card), NewPointsService(newFakeUserRepo(), newFakeAppRepo()))

	status := "NONSENSE"
	_, err := svc.Update(auth.Actor{ID: "owner", Role: models.UserRoleUser}, "c1", &dto.UpdateCardRequest{Status: &status})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCardStatus)
}

func TestCardDelete_OwnerOnly(t *testing.T) {
	card := &models.InterviewCard{UserID: "owner", Status: models.CardStatusOpen}
	card.ID = "c1"
	cardRepo := newFakeCardRepo(card)
	svc := NewCardService(cardRepo, NewPointsService(newFakeUserRepo(), newFakeAppRepo()))

	err := svc.Delete(auth.Actor{ID: "stranger", Role: models.UserRoleUser}, "c1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	require.NoError(t, svc.Delete(auth.Actor{ID: "owner", Role: models.UserRoleUser}, "c1"))
	_, err = svc.GetByID("c1")
	assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
}
