package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createListRequest struct {
	BoardID string `json:"boardId"`
	Title   string `json:"title"`
}

func (h *Handler) CreateList(c *gin.Context) {
	var req createListRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board ID and title are required"})
		return
	}

	list, err := h.Lists.Create(c.Request.Context(), req.BoardID, req.Title)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      list.ID,
		"title":   list.Title,
		"order":   list.Order,
		"boardId": list.BoardID,
	})
}

func (h *Handler) DeleteList(c *gin.Context) {
	listID := c.Param("listId")

	if err := h.Lists.Delete(c.Request.Context(), listID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "listId": listID})
}
