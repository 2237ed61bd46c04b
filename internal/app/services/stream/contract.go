package stream

import (
	"context"
	"time"

	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type Extractor interface {
	Extract(ctx context.Context, req ytdlp.Request) (*ytdlp.Info, error)
}
