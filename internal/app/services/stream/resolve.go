package stream

import (
	"context"
	"errors"

	"github.com/angristan/nebula-backend/internal/infra/repository/cache"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"github.com/angristan/nebula-backend/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

// Resolve returns a direct stream URL for a watch page URL. Failures are
// logged here; the returned error's message is what clients see.
func (s *StreamService) Resolve(ctx context.Context, sourceURL string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "StreamService.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("source_url", sourceURL))

	// Check if the stream URL is cached
	cached, err := s.cache.Get(ctx, sourceURL)
	if err == nil && cached != "" {
		metrics.StreamCacheHitsTotal.Inc()
		span.AddEvent("Cache hit")
		return cached, nil
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.WithError(err).Warn("Stream cache lookup failed")
	}
	metrics.StreamCacheMissesTotal.Inc()
	span.AddEvent("Cache miss")

	// The shared extraction must not die with whichever request started it.
	ch := s.inflight.DoChan(sourceURL, func() (any, error) {
		return s.extract(context.WithoutCancel(ctx), sourceURL)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return "", ctx.Err()
	}

	if res.Shared {
		span.AddEvent("Shared in-flight extraction")
	}
	if err := res.Err; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrStreamNotFound) {
			s.logger.WithField("url", sourceURL).Debug("No stream URL in extractor output")
		} else {
			s.logger.WithError(err).WithField("url", sourceURL).Warn("Stream failed")
		}
		return "", err
	}

	return res.Val.(string), nil
}

func (s *StreamService) extract(ctx context.Context, sourceURL string) (string, error) {
	info, err := s.extractor.Extract(ctx, ytdlp.Request{
		Target:     sourceURL,
		Format:     AudioFormat,
		NoPlaylist: true,
	})
	if err != nil {
		return "", err
	}

	streamURL := info.StreamURL()
	if streamURL == "" {
		return "", ErrStreamNotFound
	}

	if err := s.cache.Set(ctx, sourceURL, streamURL, s.ttl); err != nil {
		s.logger.WithError(err).Warn("Failed to cache stream URL")
	}

	return streamURL, nil
}
