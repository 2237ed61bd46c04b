package media

import (
	"context"

	"github.com/angristan/nebula-backend/internal/domain"
)

type MediaService interface {
	Search(ctx context.Context, query string) []domain.Track
	UpNext(ctx context.Context, videoID string) []domain.Track
	TrackInfo(ctx context.Context, videoID string) domain.Track
}
