package stream

import (
	"go.opentelemetry.io/otel/trace"
)

type StreamHandler struct {
	tracer        trace.Tracer
	streamService StreamService
}

func New(
	tracer trace.Tracer,
	streamService StreamService,
) *StreamHandler {
	return &StreamHandler{
		tracer:        tracer,
		streamService: streamService,
	}
}
