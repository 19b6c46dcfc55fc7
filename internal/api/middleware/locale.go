package middleware

import (
	"Bloghouse/internal/pkg/consts"
	"Bloghouse/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware 按 Accept-Language 协商响应语言
func LocaleMiddleware(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.Negotiate(c.GetHeader("Accept-Language"), fallback)
		c.Set(consts.LocaleKey, locale)
		c.Header("Content-Language", locale)
		c.Next()
	}
}
