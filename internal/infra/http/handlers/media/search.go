package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *MediaHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "MediaHandler.Search")
	defer span.End()

	query, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	c.JSON(http.StatusOK, h.mediaService.Search(ctx, query))
}
