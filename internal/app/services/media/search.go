package media

import (
	"context"
	"fmt"

	"github.com/angristan/nebula-backend/internal/domain"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Search never fails: extractor errors are logged and yield an empty list.
func (s *MediaService) Search(ctx context.Context, query string) []domain.Track {
	ctx, span := s.tracer.Start(ctx, "MediaService.Search")
	defer span.End()

	span.SetAttributes(attribute.String("query", query))

	info, err := s.extractor.Extract(ctx, ytdlp.Request{
		Target: fmt.Sprintf("ytsearch%d:%s", SearchLimit, query),
		Flat:   true,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).WithField("query", query).Warn("/search failed")
		return []domain.Track{}
	}

	tracks := entriesToTracks(info.Entries)
	span.SetAttributes(attribute.Int("results", len(tracks)))

	return tracks
}
