package router

import (
	"gorm.io/gorm"

	"github.com/hanseol-dev/lumina-backend/internal/handlers"
	"github.com/hanseol-dev/lumina-backend/internal/imageproc"
	custommw "github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/internal/storage"
	"github.com/hanseol-dev/lumina-backend/internal/validators"
	"github.com/hanseol-dev/lumina-backend/pkg/config"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware attaches the global middleware stack and the centralized
// error handler.
func SetupMiddleware(e *echo.Echo) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(custommw.Language())
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler()
}

// SetupRoutes migrates the schema, wires repositories, services and handlers,
// and registers every route group.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, store storage.Storage, processor *imageproc.Processor) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Series{},
		&models.SeriesPhoto{},
		&models.Collection{},
		&models.CollectionPhoto{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Notification{},
	); err != nil {
		return err
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	photoRepo := repositories.NewPostgresPhotoRepository(db)
	seriesRepo := repositories.NewPostgresSeriesRepository(db)
	collectionRepo := repositories.NewPostgresCollectionRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	notificationService := services.NewNotificationService(notificationRepo, userRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	photoService := services.NewPhotoService(photoRepo, store, processor)
	seriesService := services.NewSeriesService(seriesRepo, photoRepo)
	collectionService := services.NewCollectionService(collectionRepo, photoRepo)
	commentService := services.NewCommentService(commentRepo, photoRepo, seriesRepo, notificationService)
	likeService := services.NewLikeService(likeRepo, photoRepo, seriesRepo, commentRepo, notificationService)
	followService := services.NewFollowService(followRepo, userRepo, notificationService)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, photoService, followService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	seriesHandler := handlers.NewSeriesHandler(seriesService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)
	followHandler := handlers.NewFollowHandler(followService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	handlers.RegisterHealthRoutes(e)

	api := e.Group("/api")

	auth := api.Group("/auth")
	authHandler.RegisterAuthRoutes(auth)

	// Read routes: anonymous allowed, but a valid token changes what the
	// viewer can see.
	public := api.Group("", custommw.OptionalJWTAuth(cfg.JWTSecret, userRepo))
	photoHandler.RegisterPublicPhotoRoutes(public)
	seriesHandler.RegisterPublicSeriesRoutes(public)
	userHandler.RegisterPublicUserRoutes(public)
	commentHandler.RegisterPublicCommentRoutes(public)
	likeHandler.RegisterPublicLikeRoutes(public)

	protected := api.Group("", custommw.JWTAuth(cfg.JWTSecret, userRepo))
	authHandler.RegisterMeRoutes(protected)
	userHandler.RegisterUserRoutes(protected)
	photoHandler.RegisterPhotoRoutes(protected)
	seriesHandler.RegisterSeriesRoutes(protected)
	collectionHandler.RegisterCollectionRoutes(protected)
	commentHandler.RegisterCommentRoutes(protected)
	likeHandler.RegisterLikeRoutes(protected)
	followHandler.RegisterFollowRoutes(protected)
	notificationHandler.RegisterNotificationRoutes(protected)

	return nil
}
