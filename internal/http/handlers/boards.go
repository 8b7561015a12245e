package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createBoardRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateBoard is POST /boards. The response carries only id and name; the
// four seeded lists are injected client-side and round-trip on next reload.
func (h *Handler) CreateBoard(c *gin.Context) {
	var req createBoardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and board name are required"})
		return
	}

	board, err := h.Boards.Create(c.Request.Context(), req.Username, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": board.ID, "name": board.Title})
}

// DeleteBoard is DELETE /boards/:boardId?username=. Not-owned and missing
// boards both answer 404.
func (h *Handler) DeleteBoard(c *gin.Context) {
	boardID := c.Param("boardId")
	username := c.Query("username")

	if err := h.Boards.Delete(c.Request.Context(), boardID, username); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully", "boardId": boardID})
}
