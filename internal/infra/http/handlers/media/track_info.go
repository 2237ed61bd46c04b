package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *MediaHandler) TrackInfo(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "MediaHandler.TrackInfo")
	defer span.End()

	videoID, ok := c.GetQuery("video_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}

	c.JSON(http.StatusOK, h.mediaService.TrackInfo(ctx, videoID))
}
