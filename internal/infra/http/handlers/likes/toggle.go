package likes

import (
	"net/http"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *LikesHandler) Toggle(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LikesHandler.Toggle")
	defer span.End()

	videoID, ok := param(c, "videoId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoId is required"})
		return
	}
	title, ok := param(c, "title")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	artist, _ := param(c, "artist")
	thumbnail, _ := param(c, "thumbnail")

	track := domain.Track{
		VideoID:   videoID,
		Title:     title,
		Artist:    artist,
		Thumbnail: thumbnail,
	}

	// the service already logged any failure and filled in the message
	result, _ := h.likesService.Toggle(ctx, track)

	c.JSON(http.StatusOK, result)
}

func (h *LikesHandler) All(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LikesHandler.All")
	defer span.End()

	c.JSON(http.StatusOK, gin.H{"liked": h.likesService.All(ctx)})
}
