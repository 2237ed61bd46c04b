package media

import (
	"context"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// UpNext returns up to UpNextLimit related tracks in random order.
func (s *MediaService) UpNext(ctx context.Context, videoID string) []domain.Track {
	ctx, span := s.tracer.Start(ctx, "MediaService.UpNext")
	defer span.End()

	span.SetAttributes(attribute.String("video_id", videoID))

	info, err := s.extractor.Extract(ctx, ytdlp.Request{
		Target: domain.WatchURL(videoID),
		Flat:   true,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).WithField("video_id", videoID).Warn("UpNext failed")
		return []domain.Track{}
	}

	related := info.RelatedVideos
	if len(related) > UpNextLimit {
		related = related[:UpNextLimit]
	}

	tracks := entriesToTracks(related)
	s.shuffle(tracks)

	return tracks
}
