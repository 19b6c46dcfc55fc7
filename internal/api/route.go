package api

import (
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/api/dto"
	"Bloghouse/internal/api/middleware"
	"Bloghouse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Locale & Logger & Recovery & Audit & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LocaleMiddleware(cfg.App.Locale))
	logger.SetupGin(r)
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.AuditMiddleware(cfg.Logger.AuditBodyLimit))
	r.Use(middleware.CORSMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NoRoute)
	r.NoMethod(middleware.NoMethod)

	apiGroup := r.Group(cfg.Server.BasePath)
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.Response{Success: true, Message: "pong"})
		})

		blogGroup := apiGroup.Group("/blog")

		categoryGroup := blogGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)
			categoryGroup.GET("/parent-categories", group.CategoryHandler.ListParentCandidates)
			categoryGroup.GET("/:id", group.CategoryHandler.GetCategory)

			authGroup := categoryGroup.Group("")
			if cfg.Auth.ProtectCategories {
				authGroup.Use(middleware.AuthMiddleware(group.JWTManager))
			}
			{
				authGroup.POST("", group.CategoryHandler.CreateCategory)
				authGroup.PUT("/:id", group.CategoryHandler.UpdateCategory)
				authGroup.DELETE("/:id", group.CategoryHandler.DeleteCategory)
			}
		}

		postGroup := blogGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:id", group.PostHandler.GetPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(group.JWTManager))
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:id", group.PostHandler.DeletePost)
			}
		}
	}

	return r
}
