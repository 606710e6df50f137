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

func TestSubscriptionPurchase_CostAndDuration(t *testing.T) {
	subRepo := newFakeSubRepo(map[string]int{"u1": 250})
	svc := NewSubscriptionService(subRepo)

	sub, err := svc.Purchase(auth.Actor{ID: "u1", Role: models.UserRoleUser}, &dto.PurchaseSubscriptionRequest{Weeks: 2})
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, 50, subRepo.points["u1"])

	days := sub.EndDate.Sub(sub.StartDate).Hours() / 24
	assert.InDelta(t, 14, days, 0.01)
}

func TestSubscriptionPurchase_InsufficientPoints(t *testing.T) {
	subRepo := newFakeSubRepo(map[string]int{"u1": 99})
	svc := NewSubscriptionService(subRepo)

	_, err := svc.Purchase(auth.Actor{ID: "u1", Role: models.UserRoleUser}, &dto.PurchaseSubscriptionRequest{Weeks: 1})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)
	assert.Equal(t, 99, subRepo.points["u1"])
}

func TestSubscriptionPurchase_ExactBalance(t *testing.T) {
	subRepo := newFakeSubRepo(map[string]int{"u1": 100})
	svc := NewSubscriptionService(subRepo)

	_, err := svc.Purchase(auth.Actor{ID: "u1", Role: models.UserRoleUser}, &dto.PurchaseSubscriptionRequest{Weeks: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, subRepo.points["u1"])
}

func TestExpireStale(t *testing.T) {
	subRepo := newFakeSubRepo(map[string]int{"u1": 1000})
	svc := NewSubscriptionService(subRepo)

	// Две подписки: одна давно кончилась, вторая активна
	_, err := svc.Purchase(auth.Actor{ID: "u1", Role: models.UserRoleUser}, &dto.PurchaseSubscriptionRequest{Weeks: 1})
	require.NoError(t, err)
	stale := &models.Subscription{
		UserID:    "u1",
		StartDate: time.Now().Add(-30 * 24 * time.Hour),
		EndDate:   time.Now().Add(-23 * 24 * time.Hour),
		Status:    models.SubscriptionStatusActive,
	}
	stale.ID = "stale"
	subRepo.subs = append(subRepo.subs, stale)

	count, err := svc.ExpireStale(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, models.SubscriptionStatusExpired, stale.Status)
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Now()

	active := models.Subscription{
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
		Status:    models.SubscriptionStatusActive,
	}
	assert.True(t, active.IsActive(now))

	ended := active
	ended.EndDate = now.Add(-time.Minute)
	assert.False(t, ended.IsActive(now))

	flipped := active
	flipped.Status = models.SubscriptionStatusExpired
	assert.False(t, flipped.IsActive(now))
}
