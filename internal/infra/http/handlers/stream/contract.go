package stream

import "context"

type StreamService interface {
	Resolve(ctx context.Context, sourceURL string) (string, error)
}
