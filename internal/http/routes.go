package http

import (
	"os"
	"strconv"
	"time"

	"kanban_webapp/internal/http/handlers"
	"kanban_webapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	// Users: identify-or-create, no sessions
	api.POST("/users", h.Identify)

	// Boards
	api.POST("/boards", h.CreateBoard)
	api.DELETE("/boards/:boardId", h.DeleteBoard)

	// Lists
	api.POST("/lists", h.CreateList)
	api.DELETE("/lists/:listId", h.DeleteList)

	// Tasks
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.PATCH("/tasks/:taskId", h.UpdateTask)
	api.DELETE("/tasks/:taskId", h.DeleteTask)

	// Board page aggregate (initial payload for a user's board view)
	api.GET("/board/:username", h.BoardPage)
}
