package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountHandler "freelance-job-tracker/internal/account/handler"
	accountRepository "freelance-job-tracker/internal/account/repository"
	accountService "freelance-job-tracker/internal/account/service"
	"freelance-job-tracker/internal/config"
	"freelance-job-tracker/internal/database"
	jobHandler "freelance-job-tracker/internal/job/handler"
	jobRepository "freelance-job-tracker/internal/job/repository"
	jobService "freelance-job-tracker/internal/job/service"
	"freelance-job-tracker/internal/logger"
	"freelance-job-tracker/internal/mailer"
	"freelance-job-tracker/internal/middleware"
	userHandler "freelance-job-tracker/internal/user/handler"
	userRepository "freelance-job-tracker/internal/user/repository"
	userService "freelance-job-tracker/internal/user/service"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepo := userRepository.NewRepository(db)
	userSvc := userService.NewService(userRepo, mailer.FromConfig(cfg), cfg)
	userHdl := userHandler.NewHandler(userSvc)

	accountRepo := accountRepository.NewRepository(db)
	accountSvc := accountService.NewService(accountRepo)
	accountHdl := accountHandler.NewHandler(accountSvc)

	jobRepo := jobRepository.NewRepository(db)
	jobSvc := jobService.NewService(jobRepo, accountRepo)
	jobHdl := jobHandler.NewHandler(jobSvc)

	v1 := router.Group("/api/v1")
	{
		userHdl.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHdl.RegisterProtectedRoutes(protected)
			accountHdl.RegisterRoutes(protected)
			jobHdl.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
