package structured

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Emit(ctx context.Context, sc model.Scope, input EmitInput) (Document, error)
}
