package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BoardPage is GET /board/:username — the one aggregate fetch per board
// view. Unknown usernames surface as a missing page.
func (h *Handler) BoardPage(c *gin.Context) {
	page, err := h.Page.Read(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
