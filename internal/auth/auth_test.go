package auth

import (
	"testing"

	"supermock_backend/internal/config"
	"supermock_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_1234567890"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long_enough"))
}

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("user-42", string(models.UserRoleUser))
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, string(models.UserRoleUser), claims.Role)
	assert.Equal(t, "supermock", claims.Issuer)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-42", string(models.UserRoleUser))
	require.NoError(t, err)

	old := config.AppConfig.JWT.Secret
	config.AppConfig.JWT.Secret = "another_secret_entirely_000000"
	defer func() { config.AppConfig.JWT.Secret = old }()

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveActor_VirtualAdmin(t *testing.T) {
	actor := ResolveActor(VirtualAdminID, "")
	assert.True(t, actor.Virtual)
	assert.True(t, actor.IsAdmin())
	assert.True(t, actor.Unlimited())
}

func TestResolveActor_RegularUser(t *testing.T) {
	actor := ResolveActor("user-1", string(models.UserRoleUser))
	assert.False(t, actor.Virtual)
	assert.False(t, actor.IsAdmin())
	assert.False(t, actor.Unlimited())
}

func TestResolveActor_AdminRole(t *testing.T) {
	actor := ResolveActor("user-2", string(models.UserRoleAdmin))
	assert.False(t, actor.Virtual)
	assert.True(t, actor.IsAdmin())
}
