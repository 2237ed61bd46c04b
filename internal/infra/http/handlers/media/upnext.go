package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *MediaHandler) UpNext(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "MediaHandler.UpNext")
	defer span.End()

	videoID, ok := c.GetQuery("videoId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoId is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upnext": h.mediaService.UpNext(ctx, videoID)})
}
