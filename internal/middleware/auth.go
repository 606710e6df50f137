package middleware

import (
	"strings"

	"supermock_backend/internal/auth"
	"supermock_backend/internal/logger"
	"supermock_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ActorKey - ключ, под которым субъект запроса лежит в gin.Context
const ActorKey = "actor"

// AuthMiddleware - middleware проверки JWT. Разбирает токен и кладет
// в контекст готовый auth.Actor: сентинельный id виртуального админа
// превращается в Actor{Virtual: true} уже здесь, дальше по коду
// сравнения с магическим id не встречаются.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		actor := auth.ResolveActor(claims.UserID, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), actor.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// AdminMiddleware пропускает только администраторов
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorVal, exists := c.Get(ActorKey)
		if !exists {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		actor, ok := actorVal.(auth.Actor)
		if !ok || !actor.IsAdmin() {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
