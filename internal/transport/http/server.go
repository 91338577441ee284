package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "recipebox/internal/app"
	"recipebox/internal/bootstrap"
	"recipebox/internal/cache"
	"recipebox/internal/platform/rabbitmq"
	"recipebox/internal/repository"
	"recipebox/internal/transport/http/handler"
	"recipebox/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	recipeRepo := repository.NewRecipeRepository(app.MySQL)
	bookmarkRepo := repository.NewBookmarkRepository(app.MySQL)
	ratingRepo := repository.NewRatingRepository(app.MySQL)
	activityRepo := repository.NewActivityRepository(app.MySQL)

	recipeCache := cache.NewRecipeCache(
		app.Redis,
		time.Duration(app.Config.Redis.RecipeTTLSeconds)*time.Second,
	)
	activityPublisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	recipeService := appsvc.NewRecipeService(recipeRepo, userRepo, recipeCache, activityPublisher)
	bookmarkService := appsvc.NewBookmarkService(bookmarkRepo, recipeRepo)
	ratingService := appsvc.NewRatingService(ratingRepo, recipeRepo)
	activityService := appsvc.NewActivityService(activityRepo)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	activityHandler := handler.NewActivityHandler(activityService)

	authRequired := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	users := router.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", authRequired, authHandler.Me)
	users.GET("/me/activity", authRequired, activityHandler.ListMine)

	recipes := router.Group("/recipes")
	recipes.POST("", recipeHandler.Create)
	recipes.GET("", recipeHandler.List)
	recipes.GET("/:id", recipeHandler.Get)
	recipes.PUT("/:id", recipeHandler.Update)
	recipes.DELETE("/:id", recipeHandler.Delete)

	bookmarks := router.Group("/bookmarks")
	bookmarks.Use(authRequired)
	bookmarks.POST("", bookmarkHandler.Add)
	bookmarks.DELETE("", bookmarkHandler.Remove)
	bookmarks.GET("", bookmarkHandler.List)

	ratings := router.Group("/ratings")
	ratings.Use(authRequired)
	ratings.POST("", ratingHandler.Create)
	ratings.GET("", ratingHandler.List)
	ratings.PUT("/:id", ratingHandler.Update)
	ratings.DELETE("/:id", ratingHandler.Delete)

	return router
}
