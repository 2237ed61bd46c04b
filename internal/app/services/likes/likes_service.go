package likes

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const (
	MessageLiked   = "Song liked"
	MessageUnliked = "Song unliked"
	MessageFailed  = "Failed to update liked songs"
)

type LikesService struct {
	tracer trace.Tracer
	logger logrus.FieldLogger
	store  Store
	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	store Store,
) *LikesService {
	return &LikesService{
		tracer: tracer,
		logger: logger,
		store:  store,
	}
}

type ToggleResult struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}
