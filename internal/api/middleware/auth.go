package middleware

import (
	"Bloghouse/internal/pkg/consts"
	"Bloghouse/internal/pkg/i18n"
	"Bloghouse/internal/pkg/response"
	"Bloghouse/internal/pkg/security"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(jwtManager *security.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, i18n.AuthTokenMissing)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			log.WarnContext(c.Request.Context(), "rejected bearer token", "err", err)
			response.Fail(c, http.StatusUnauthorized, i18n.AuthTokenInvalid)
			c.Abort()
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Next()
	}
}
