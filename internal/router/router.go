package router

import (
	"ripple/config"
	"ripple/internal/handler"
	"ripple/internal/middleware"
	"ripple/internal/repository"
	"ripple/internal/service"
	"ripple/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := service.NewNotificationService(notificationRepo)
	authSvc := service.NewAuthService(cfg, userRepo)
	userSvc := service.NewUserService(userRepo, followRepo, postRepo, notifSvc, &cfg.Media)
	postSvc := service.NewPostService(postRepo, likeRepo, bookmarkRepo, followRepo, userRepo, notifSvc, &cfg.Media)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userSvc)
	userHandler := handler.NewUserHandler(userSvc, cloud)
	postHandler := handler.NewPostHandler(postSvc)
	notificationHandler := handler.NewNotificationHandler(notifSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	optionalMw := middleware.AuthOptional(&cfg.JWT)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	users := r.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.GET("/me", authMw, userHandler.Me)
		users.PATCH("/me", authMw, userHandler.UpdateMe)
		users.GET("/random", optionalMw, userHandler.RandomProfiles)
		users.GET("/profile/:username", optionalMw, userHandler.PublicProfile)
		users.GET("/profile/:username/followers", optionalMw, userHandler.Followers)
		users.GET("/profile/:username/following", optionalMw, userHandler.Following)
		users.POST("/:id/follow", authMw, userHandler.ToggleFollow)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", optionalMw, postHandler.List)
		posts.POST("", authMw, postHandler.Create)
		posts.GET("/feed", authMw, postHandler.Feed)
		posts.GET("/user/:username", optionalMw, postHandler.ByUser)
		posts.GET("/bookmark", authMw, postHandler.Bookmarked)
		posts.GET("/most_liked", optionalMw, postHandler.MostLiked)
		posts.POST("/:id/like", authMw, postHandler.ToggleLike)
		posts.POST("/:id/bookmark", authMw, postHandler.ToggleBookmark)
		posts.POST("/:id/repost", authMw, postHandler.ToggleRepost)
	}

	notifications := r.Group("/notifications", authMw)
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread_count", notificationHandler.UnreadCount)
		notifications.POST("/:id/mark_as_read", notificationHandler.MarkAsRead)
	}

	return r
}
