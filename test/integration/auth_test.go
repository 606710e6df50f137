package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"supermock_backend/internal/models"
	"supermock_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и логин "золотого пути"
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"name":     "Кандидат",
		"email":    email,
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "User registered successfully")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
	t.Logf("ЛОГИН: Успешно. Ответ: %s", logBodyStr)
}

// TestRegister_DuplicateEmail - защита от дубликатов
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        email,
		PasswordHash: "pass123456",
		Role:         models.UserRoleUser,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    email,
		"password": "password_is_long_enough_123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)
	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already exists")
}

// TestLogin_WrongPassword - неверный пароль дает 401 без деталей
func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "definitely_wrong",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Invalid email or password")
}

// TestGetProfile_Success - профиль по токену
func TestGetProfile_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	userToken, user := helpers.CreateAndLoginRandomUser(t, ts, ts.DB)

	profRes, profBodyStr := ts.SendRequest(t, "GET", "/api/v1/user/profile", userToken, nil)
	assert.Equal(t, http.StatusOK, profRes.StatusCode)
	assert.Contains(t, profBodyStr, user.Email)
	assert.Contains(t, profBodyStr, user.Name)
	assert.NotContains(t, profBodyStr, "passwordHash")
}

// TestGetProfile_NoToken - без токена 401
func TestGetProfile_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	profRes, _ := ts.SendRequest(t, "GET", "/api/v1/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, profRes.StatusCode)
}
