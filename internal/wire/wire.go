package wire

import (
	"Bloghouse/internal/api"
	"Bloghouse/internal/api/config"
	"Bloghouse/internal/api/handler"
	"Bloghouse/internal/pkg/security"
	"Bloghouse/internal/repository"
	"Bloghouse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	DeletePolicy service.DeletePolicy
	JWTManager   *security.JWTManager
	UserService  service.UserService
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	txm := repository.NewTxManager(db)
	categoryRepo := repository.NewCategoryRepo(db)
	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepo(db)

	policy := service.NewDeletePolicy(categoryRepo, postRepo)

	categoryService := service.NewCategoryService(txm, categoryRepo, policy)
	postService := service.NewPostService(txm, postRepo, categoryRepo, userRepo, policy)
	userService := service.NewUserService(userRepo)

	jwtManager := security.NewJWTManager(cfg.Auth)

	handlers := &api.HandlersGroup{
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		PostHandler:     handler.NewPostHandler(postService),
		JWTManager:      jwtManager,
	}

	router := api.SetupRouter(handlers, cfg)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		DeletePolicy: policy,
		JWTManager:   jwtManager,
		UserService:  userService,
	}, nil
}
