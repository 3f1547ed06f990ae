package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sabidos/sabidos-api/internal/auth"
	"github.com/sabidos/sabidos-api/internal/handlers"
	"github.com/sabidos/sabidos-api/internal/middleware"
	"github.com/sabidos/sabidos-api/internal/repository"
	"github.com/sabidos/sabidos-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps holds what the router needs to build its handlers
type Deps struct {
	DB          *gorm.DB
	Verifier    auth.Verifier
	Generator   services.FlashcardGenerator
	Logger      *zap.Logger
	CORSOrigins []string
}

// NewRouter wires repositories, services and handlers into a gin engine
func NewRouter(deps Deps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	handlers.RegisterValidation()

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))
	if len(deps.CORSOrigins) > 0 {
		r.Use(corsMiddleware(deps.CORSOrigins))
	}

	// Initialize services
	users := services.NewUserService(repository.NewUserRepository(deps.DB), log)
	events := services.NewEventService(repository.NewEventRepository(deps.DB), users, log)
	flashcards := services.NewFlashcardService(repository.NewFlashcardRepository(deps.DB), users, log)
	pomodoros := services.NewPomodoroService(repository.NewPomodoroRepository(deps.DB), users, log)
	summaries := services.NewSummaryService(repository.NewSummaryRepository(deps.DB), users, log)
	suggester := services.NewFlashcardSuggester(deps.Generator)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(users, log)
	eventHandler := handlers.NewEventHandler(events, log)
	flashcardHandler := handlers.NewFlashcardHandler(flashcards, suggester, log)
	pomodoroHandler := handlers.NewPomodoroHandler(pomodoros, log)
	summaryHandler := handlers.NewSummaryHandler(summaries, log)

	// Health check endpoint
	r.GET("/health", healthHandler(deps.DB))

	requireAuth := middleware.RequireAuth(deps.Verifier, log)

	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/sync", userHandler.Sync)
			user.GET("/me", requireAuth, userHandler.Me)
			user.POST("/profile", requireAuth, userHandler.UpdateProfile)
		}

		eventHandler.Register(api.Group("/eventos", requireAuth))
		flashcardHandler.Register(api.Group("/flashcard", requireAuth))
		pomodoroHandler.Register(api.Group("/pomodoro", requireAuth))
		summaryHandler.Register(api.Group("/resumos", requireAuth))
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "ok", http.StatusOK

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":  status,
			"message": "Sabidos API is running",
		})
	}
}
