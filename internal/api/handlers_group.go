package api

import (
	"Bloghouse/internal/api/handler"
	"Bloghouse/internal/pkg/security"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	CategoryHandler *handler.CategoryHandler
	PostHandler     *handler.PostHandler
	JWTManager      *security.JWTManager
}
