package media

import (
	"context"

	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
)

type Extractor interface {
	Extract(ctx context.Context, req ytdlp.Request) (*ytdlp.Info, error)
}
