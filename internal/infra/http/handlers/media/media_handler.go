package media

import (
	"go.opentelemetry.io/otel/trace"
)

type MediaHandler struct {
	tracer       trace.Tracer
	mediaService MediaService
}

func New(
	tracer trace.Tracer,
	mediaService MediaService,
) *MediaHandler {
	return &MediaHandler{
		tracer:       tracer,
		mediaService: mediaService,
	}
}
