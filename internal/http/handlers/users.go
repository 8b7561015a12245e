package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type identifyRequest struct {
	Username string `json:"username"`
}

// Identify is POST /users: username-only "auth". An existing username is a
// login, a new one is created on the spot.
func (h *Handler) Identify(c *gin.Context) {
	var req identifyRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	username, created, err := h.Users.Identify(c.Request.Context(), req.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	message := "Welcome back!"
	if created {
		message = "Username created!"
	}
	c.JSON(http.StatusOK, gin.H{"username": username, "message": message})
}
