package stream

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// AudioFormat asks for m4a audio, then any audio, then whatever is best.
const AudioFormat = "bestaudio[ext=m4a]/bestaudio/best"

const DefaultTTL = 30 * time.Minute

type StreamService struct {
	tracer    trace.Tracer
	logger    logrus.FieldLogger
	extractor Extractor
	cache     Cache
	ttl       time.Duration
	inflight  singleflight.Group
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	extractor Extractor,
	cache Cache,
	ttl time.Duration,
) *StreamService {
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &StreamService{
		tracer:    tracer,
		logger:    logger,
		extractor: extractor,
		cache:     cache,
		ttl:       ttl,
	}
}

var (
	ErrStreamNotFound = errors.New("Stream not found")
)
