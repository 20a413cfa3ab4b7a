package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/traincore/coaching-api/docs"
	"github.com/traincore/coaching-api/internal/api/handler"
	"github.com/traincore/coaching-api/internal/api/middleware"
	"github.com/traincore/coaching-api/internal/core/domain"
	"github.com/traincore/coaching-api/internal/core/service"
	"github.com/traincore/coaching-api/internal/infrastructure/config"
	mongorepo "github.com/traincore/coaching-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/traincore/coaching-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coaching"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	workoutRepo := mongorepo.NewWorkoutRepository(db)
	mealRepo := mongorepo.NewMealRepository(db)
	contentRepo := mongorepo.NewContentRepository(db)
	weightRepo := mongorepo.NewWeightRepository(db)

	throttle := redisinfra.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	workoutService := service.NewWorkoutService(workoutRepo, log)
	mealService := service.NewMealService(mealRepo, log)
	contentService := service.NewContentService(contentRepo, log)
	weightService := service.NewWeightService(weightRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	mealHandler := handler.NewMealHandler(mealService)
	contentHandler := handler.NewContentHandler(contentService)
	weightHandler := handler.NewWeightHandler(weightService)

	authRequired := middleware.Auth(cfg.JWTSecret, authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public content ---
	e.GET("/home", contentHandler.GetHome)
	e.GET("/contact", contentHandler.GetContact)
	e.GET("/testimonials", contentHandler.ListTestimonials)
	e.GET("/videos", contentHandler.ListVideos)

	// --- Admin content mutation ---
	e.PUT("/home", contentHandler.UpsertHome, authRequired, adminOnly)
	e.PUT("/contact", contentHandler.UpsertContact, authRequired, adminOnly)
	e.GET("/testimonials/all", contentHandler.ListAllTestimonials, authRequired, adminOnly)
	e.POST("/testimonials", contentHandler.CreateTestimonial, authRequired, adminOnly)
	e.PATCH("/testimonials/:id", contentHandler.UpdateTestimonial, authRequired, adminOnly)
	e.DELETE("/testimonials/:id", contentHandler.DeleteTestimonial, authRequired, adminOnly)
	e.POST("/videos", contentHandler.CreateVideo, authRequired, adminOnly)
	e.PATCH("/videos/:id", contentHandler.UpdateVideo, authRequired, adminOnly)
	e.DELETE("/videos/:id", contentHandler.DeleteVideo, authRequired, adminOnly)

	// --- Users ---
	users := e.Group("/users", authRequired)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PATCH("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Workout plans ---
	workouts := e.Group("/workouts", authRequired)
	workouts.POST("", workoutHandler.CreatePlan, adminOnly)
	workouts.GET("/:id", workoutHandler.GetPlan)
	workouts.GET("/client/:clientId", workoutHandler.ListClientPlans)
	workouts.PATCH("/:id", workoutHandler.UpdatePlan, adminOnly)
	workouts.DELETE("/:id", workoutHandler.DeletePlan, adminOnly)
	workouts.POST("/:id/exercises", workoutHandler.AddExercise, adminOnly)

	// --- Exercises and sets ---
	exercises := e.Group("/exercises", authRequired)
	exercises.GET("/plan/:planId", workoutHandler.ListExercises)
	exercises.PATCH("/sets/:setId", workoutHandler.UpdateSet)
	exercises.DELETE("/sets/:setId", workoutHandler.DeleteSet, adminOnly)
	exercises.POST("/:exerciseId/sets", workoutHandler.AddSet, adminOnly)
	exercises.PATCH("/:exerciseId", workoutHandler.UpdateExercise, adminOnly)
	exercises.DELETE("/:exerciseId", workoutHandler.DeleteExercise, adminOnly)

	// --- Meal plans ---
	meals := e.Group("/meals", authRequired)
	meals.POST("", mealHandler.CreatePlan, adminOnly)
	meals.GET("/plan/:planId", mealHandler.ListMeals)
	meals.GET("/client/:clientId", mealHandler.ListClientPlans)
	meals.GET("/:id", mealHandler.GetPlan)
	meals.PATCH("/:id", mealHandler.UpdatePlan, adminOnly)
	meals.DELETE("/:id", mealHandler.DeletePlan, adminOnly)
	meals.POST("/:id/meals", mealHandler.AddMeal, adminOnly)
	meals.PATCH("/items/:mealId", mealHandler.UpdateMeal, adminOnly)
	meals.DELETE("/items/:mealId", mealHandler.DeleteMeal, adminOnly)

	// --- Weight tracking ---
	weights := e.Group("/weights", authRequired)
	weights.POST("", weightHandler.Record)
	weights.GET("/client/:clientId", weightHandler.ListByClient)
	weights.DELETE("/:id", weightHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
