package metadata

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Synthesize(ctx context.Context, sc model.Scope, input SynthesizeInput) (SynthesizeOutput, error)
}
