package handlers

import (
	"net/http"

	"kanban_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	ListID  string `json:"listId"`
	Content string `json:"content"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "List ID and content are required"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), req.ListID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      task.ID,
		"content": task.Content,
		"order":   task.Order,
	})
}

// ListTasks is GET /tasks?listId=, ascending by order.
func (h *Handler) ListTasks(c *gin.Context) {
	listID := c.Query("listId")

	tasks, err := h.Tasks.List(c.Request.Context(), listID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask is PATCH /tasks/:taskId with any of listId, content, order.
// Completing a task is just an update with the Completed list's id.
func (h *Handler) UpdateTask(c *gin.Context) {
	taskID := c.Param("taskId")

	var upd domain.TaskUpdate
	if err := c.BindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updates provided"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), taskID, upd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.Tasks.Delete(c.Request.Context(), c.Param("taskId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
