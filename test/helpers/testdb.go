package helpers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"supermock_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		rawPassword := user.PasswordHash
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // Сырой пароль
		Role:         role,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	log.Printf("✅ [Helper] Создан и залогинен пользователь %s (Role: %s)", email, role)

	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginRandomUser создает пользователя с уникальным email
func CreateAndLoginRandomUser(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, "Test User", email, "password123", models.UserRoleUser)
}

// CreateCard создает открытую карточку собеседования напрямую в БД
func CreateCard(t *testing.T, db *gorm.DB, ownerID string, profession string) *models.InterviewCard {
	card := &models.InterviewCard{
		UserID:      ownerID,
		Profession:  profession,
		TechStack:   datatypes.JSON(`["Go","PostgreSQL"]`),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      models.CardStatusOpen,
	}
	result := db.Create(card)
	assert.NoError(t, result.Error, "Не удалось создать тестовую карточку")
	return card
}

// SetPoints выставляет баланс пользователя напрямую
func SetPoints(t *testing.T, db *gorm.DB, userID string, points int) {
	err := db.Model(&models.User{}).Where("id = ?", userID).Update("points", points).Error
	assert.NoError(t, err, "Не удалось выставить баланс")
}
