package middleware

import (
	"Bloghouse/internal/pkg/i18n"
	"Bloghouse/internal/pkg/response"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware 捕获 panic，记录日志并返回统一的 500 响应体
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		response.Fail(c, http.StatusInternalServerError, i18n.ServerError)
		c.Abort()
	})
}

// NoRoute 未注册路径
func NoRoute(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, i18n.RouteNotFound)
}

// NoMethod 路径存在但方法不匹配
func NoMethod(c *gin.Context) {
	response.Fail(c, http.StatusMethodNotAllowed, i18n.MethodNotAllowed)
}
