package handlers

import (
	"errors"
	"net/http"

	"kanban_webapp/internal/domain"
	"kanban_webapp/internal/logger"
	"kanban_webapp/internal/repository"
	"kanban_webapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB     *pgxpool.Pool
	Users  *service.UserService
	Boards *service.BoardService
	Lists  *service.ListService
	Tasks  *service.TaskService
	Page   *service.BoardPageService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	pageRepo := repository.NewBoardPageRepository(db)

	return &Handler{
		DB:     db,
		Users:  service.NewUserService(userRepo),
		Boards: service.NewBoardService(userRepo, boardRepo, listRepo),
		Lists:  service.NewListService(listRepo),
		Tasks:  service.NewTaskService(taskRepo),
		Page:   service.NewBoardPageService(userRepo, boardRepo, pageRepo),
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy (and every internal error) is logged and reported as
// a generic 500.
func writeError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case domain.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": derr.Message})
			return
		case domain.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": derr.Message})
			return
		case domain.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"error": derr.Message})
			return
		}
	}

	logger.Error("request failed",
		"method", c.Request.Method, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
