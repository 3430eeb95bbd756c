package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tastebook/backend/internal/handlers"
	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repositories"
	"github.com/tastebook/backend/internal/services"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, jwtSecret string) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Favorite{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Services ---
	notifier := services.NewNotifier(notificationRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)
	postService := services.NewPostService(postRepo, likeRepo, favoriteRepo)
	likeService := services.NewLikeService(likeRepo, notifier)
	favoriteService := services.NewFavoriteService(favoriteRepo, postRepo, likeRepo, notifier)
	commentService := services.NewCommentService(commentRepo, userRepo, notifier)
	followService := services.NewFollowService(followRepo, notifier)
	notificationService := services.NewNotificationService(notificationRepo, userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Read routes: anonymous allowed, decorated when a token is sent ---
	public := e.Group("/api")
	public.Use(middleware.OptionalJWTAuthMiddleware(jwtSecret))

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPublicPostRoutes(public)

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterPublicCommentRoutes(public)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	postHandler.RegisterPostRoutes(api)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	favoriteHandler.RegisterFavoriteRoutes(api)

	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
