package compliance

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Validate(ctx context.Context, sc model.Scope, input ValidateInput) (Report, error)
	Platforms(ctx context.Context) []PlatformSpec
}
