package likes

import (
	"context"

	applikes "github.com/angristan/nebula-backend/internal/app/services/likes"
	"github.com/angristan/nebula-backend/internal/domain"
)

type LikesService interface {
	Toggle(ctx context.Context, track domain.Track) (applikes.ToggleResult, error)
	All(ctx context.Context) []domain.Track
}
