package likes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Toggle likes the track if it is not in the list yet and unlikes it
// otherwise. On error the result reports the state still on disk.
func (s *LikesService) Toggle(ctx context.Context, track domain.Track) (ToggleResult, error) {
	ctx, span := s.tracer.Start(ctx, "LikesService.Toggle")
	defer span.End()

	span.SetAttributes(attribute.String("video_id", track.VideoID))

	s.mu.Lock()
	defer s.mu.Unlock()

	liked, err := s.store.Load(ctx)
	if err != nil {
		// An unreadable file is never overwritten; it stays broken until repaired.
		err = fmt.Errorf("load liked songs: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry := s.logger.WithError(err)
		if p, ok := s.store.(interface{ Path() string }); ok {
			entry = entry.WithField("path", p.Path())
		}
		entry.Error("Liked songs file is unreadable, repair or remove it")
		return ToggleResult{Liked: false, Message: MessageFailed}, err
	}

	kept := make([]domain.Track, 0, len(liked)+1)
	for _, t := range liked {
		if t.VideoID != track.VideoID {
			kept = append(kept, t)
		}
	}
	wasLiked := len(kept) != len(liked)

	result := ToggleResult{Liked: false, Message: MessageUnliked}
	if !wasLiked {
		kept = append(kept, domain.Track{
			VideoID:   track.VideoID,
			Title:     track.Title,
			Artist:    track.Artist,
			Thumbnail: track.Thumbnail,
		})
		result = ToggleResult{Liked: true, Message: MessageLiked}
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return s.fail(span, ToggleResult{Liked: wasLiked, Message: MessageFailed}, fmt.Errorf("save liked songs: %w", err))
	}

	metrics.LikeTogglesTotal.WithLabelValues(strconv.FormatBool(result.Liked)).Inc()

	return result, nil
}

// All returns every liked track; a storage error yields an empty list.
func (s *LikesService) All(ctx context.Context) []domain.Track {
	ctx, span := s.tracer.Start(ctx, "LikesService.All")
	defer span.End()

	liked, err := s.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).Warn("Failed to load liked songs")
		return []domain.Track{}
	}

	return liked
}

func (s *LikesService) fail(span trace.Span, result ToggleResult, err error) (ToggleResult, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.WithError(err).Warn("Like toggle failed")

	return result, err
}
