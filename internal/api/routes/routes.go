package routes

import (
	"cricket-scoring/internal/api/handlers"
	"cricket-scoring/internal/api/middleware"
	"cricket-scoring/internal/auth"
	"cricket-scoring/internal/config"
	"cricket-scoring/internal/repository"
	"cricket-scoring/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if cfg.TemplatesGlob != "" {
		router.LoadHTMLGlob(cfg.TemplatesGlob)
	}

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	ballRepo := repository.NewBallRepository(db)

	// Services
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenLifetime)
	matchService := service.NewMatchService(matchRepo, teamRepo, validate)
	playerService := service.NewPlayerService(playerRepo, matchRepo, validate)
	scoringService := service.NewScoringService(ballRepo, matchRepo, playerRepo, validate)

	authMiddleware := auth.NewMiddleware(authService, cfg.SessionCookie)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	matchHandler := handlers.NewMatchHandler(matchService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	ballHandler := handlers.NewBallHandler(scoringService)
	webHandler := handlers.NewWebHandler(authService, matchService, playerService, scoringService, cfg.SessionCookie)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes: token endpoints are open, everything under /api/matches
	// requires a bearer token.
	api := router.Group("/api")
	{
		api.POST("/get-token/", authHandler.GetToken)
		api.POST("/register/", authHandler.Register)

		matches := api.Group("/matches")
		matches.Use(authMiddleware.RequireAuth())
		{
			matches.GET("/", matchHandler.ListMatches)
			matches.POST("/", matchHandler.CreateMatch)
			matches.GET("/:id/", matchHandler.GetMatch)
			matches.PUT("/:id/", matchHandler.UpdateMatch)
			matches.PATCH("/:id/", matchHandler.PatchMatch)
			matches.DELETE("/:id/", matchHandler.DeleteMatch)

			matches.GET("/:id/players/", playerHandler.ListPlayers)
			matches.POST("/:id/players/", playerHandler.AddPlayer)

			matches.GET("/:id/balls/", ballHandler.ListBalls)
			matches.POST("/:id/balls/", ballHandler.RecordBall)
			matches.GET("/:id/scorecard/", ballHandler.GetScorecard)
		}
	}

	// Web routes: auth pages are open, the rest rides on the session cookie
	router.GET("/register", webHandler.RegisterForm)
	router.POST("/register", webHandler.Register)
	router.GET("/login", webHandler.LoginForm)
	router.POST("/login", webHandler.Login)
	router.GET("/logout", webHandler.Logout)

	web := router.Group("/")
	web.Use(authMiddleware.RequireSession())
	{
		web.GET("", webHandler.Home)
		web.GET("create-match", webHandler.CreateMatchForm)
		web.POST("create-match", webHandler.CreateMatch)
		web.GET("match/:id", webHandler.Dashboard)
		web.POST("match/:id", webHandler.SubmitBall)
		web.GET("match/:id/add-players", webHandler.AddPlayersForm)
		web.POST("match/:id/add-players", webHandler.AddPlayers)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
