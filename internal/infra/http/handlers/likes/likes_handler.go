package likes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type LikesHandler struct {
	tracer       trace.Tracer
	likesService LikesService
}

func New(
	tracer trace.Tracer,
	likesService LikesService,
) *LikesHandler {
	return &LikesHandler{
		tracer:       tracer,
		likesService: likesService,
	}
}

// param reads a query parameter, falling back to a form field. ok is false
// only when the key is absent from both.
func param(c *gin.Context, key string) (string, bool) {
	if v, ok := c.GetQuery(key); ok {
		return v, true
	}

	return c.GetPostForm(key)
}
