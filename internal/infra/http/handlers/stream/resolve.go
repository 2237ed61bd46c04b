package stream

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resolve answers 200 with either {"url"} or {"error"}; resolution failures
// are part of the response body, not the status.
func (h *StreamHandler) Resolve(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "StreamHandler.Resolve")
	defer span.End()

	sourceURL, ok := c.GetQuery("url")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	streamURL, err := h.streamService.Resolve(ctx, sourceURL)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": streamURL})
}
