package likes

import (
	"context"

	"github.com/angristan/nebula-backend/internal/domain"
)

type Store interface {
	Load(ctx context.Context) ([]domain.Track, error)
	Save(ctx context.Context, tracks []domain.Track) error
}
