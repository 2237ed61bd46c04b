package media

import (
	"math/rand"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const (
	SearchLimit = 20
	UpNextLimit = 20
)

type MediaService struct {
	tracer    trace.Tracer
	logger    logrus.FieldLogger
	extractor Extractor
	shuffle   func([]domain.Track)
}

type Option func(*MediaService)

// WithShuffle replaces the uniform random shuffle applied to up-next lists.
func WithShuffle(shuffle func([]domain.Track)) Option {
	return func(s *MediaService) {
		s.shuffle = shuffle
	}
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	extractor Extractor,
	opts ...Option,
) *MediaService {
	s := &MediaService{
		tracer:    tracer,
		logger:    logger,
		extractor: extractor,
		shuffle:   shuffleTracks,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func shuffleTracks(tracks []domain.Track) {
	rand.Shuffle(len(tracks), func(i, j int) {
		tracks[i], tracks[j] = tracks[j], tracks[i]
	})
}

// entriesToTracks keeps entries that have an id. Thumbnails are always built
// from the id, never taken from the extractor.
func entriesToTracks(entries []ytdlp.Entry) []domain.Track {
	tracks := make([]domain.Track, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		tracks = append(tracks, domain.Track{
			VideoID:   e.ID,
			Title:     e.TitleOrEmpty(),
			Artist:    e.Artist(),
			Thumbnail: domain.ThumbnailURL(e.ID),
		})
	}

	return tracks
}
