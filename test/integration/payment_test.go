package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"supermock_backend/internal/models"
	"supermock_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func loginAdmin(t *testing.T, ts *helpers.TestServer) string {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, "Admin", email, "admin_password1", models.UserRoleAdmin)
	return token
}

// TestPaymentApproveFlow - заявка, одобрение админом, зачисление баллов
func TestPaymentApproveFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	userToken, user := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)
	adminToken := loginAdmin(t, ts)

	// Заявка на пополнение
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/payments", userToken, map[string]interface{}{"amount": 250})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Заявка: %s", bodyStr)

	var payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &payment))
	assert.Equal(t, string(models.PaymentStatusPending), payment.Status)

	// Баллы не двигались
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 0, dbUser.Points)

	// Одобрение
	resolveBody := map[string]interface{}{
		"status":    string(models.PaymentStatusApproved),
		"adminNote": "receipt verified",
	}
	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID, adminToken, resolveBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Одобрение: %s", bodyStr)

	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 250, dbUser.Points)

	// Повторное решение отклоняется, баллы не дублируются
	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID, adminToken, resolveBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "already processed")

	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 250, dbUser.Points)
}

// TestPaymentReject - отказ ничего не зачисляет
func TestPaymentReject(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	userToken, user := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)
	adminToken := loginAdmin(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/payments", userToken, map[string]interface{}{"amount": 500})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var payment struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &payment))

	resolveBody := map[string]interface{}{"status": string(models.PaymentStatusRejected)}
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID, adminToken, resolveBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 0, dbUser.Points)
}

// TestPaymentResolve_UserForbidden - обычный пользователь не решает платежи
func TestPaymentResolve_UserForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	userToken, _ := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/payments", userToken, map[string]interface{}{"amount": 100})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var payment struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &payment))

	resolveBody := map[string]interface{}{"status": string(models.PaymentStatusApproved)}
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/payments/"+payment.ID, userToken, resolveBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestPaymentList_OwnOnly - пользователь видит только свои платежи
func TestPaymentList_OwnOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	firstToken, _ := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)
	secondToken, _ := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/payments", firstToken, map[string]interface{}{"amount": 777})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var payment struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &payment))

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/payments", secondToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, payment.ID)
}
