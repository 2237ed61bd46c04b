package media

import (
	"context"
	"math"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TrackInfo fetches full metadata. Missing fields get defaults, and a failed
// extraction yields a record made only of defaults.
func (s *MediaService) TrackInfo(ctx context.Context, videoID string) domain.Track {
	ctx, span := s.tracer.Start(ctx, "MediaService.TrackInfo")
	defer span.End()

	span.SetAttributes(attribute.String("video_id", videoID))

	info, err := s.extractor.Extract(ctx, ytdlp.Request{
		Target: domain.WatchURL(videoID),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).WithField("video_id", videoID).Warn("Track info failed")
		return defaultTrack(videoID)
	}

	track := defaultTrack(videoID)
	if info.Title != nil {
		track.Title = *info.Title
	}
	if info.Uploader != nil {
		track.Artist = *info.Uploader
	}
	if info.Duration != nil {
		d := int(math.Round(*info.Duration))
		track.Duration = &d
	}
	if info.Thumbnail != nil {
		track.Thumbnail = *info.Thumbnail
	}

	return track
}

func defaultTrack(videoID string) domain.Track {
	duration := 0

	return domain.Track{
		VideoID:   videoID,
		Title:     domain.UnknownTitle,
		Artist:    domain.UnknownArtist,
		Duration:  &duration,
		Thumbnail: domain.ThumbnailURL(videoID),
	}
}
