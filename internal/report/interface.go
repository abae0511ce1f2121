package report

import (
	"context"

	"image-insights-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	Get(ctx context.Context, sc model.Scope, input GetInput) (GetOutput, error)
	Download(ctx context.Context, sc model.Scope, input DownloadInput) (DownloadOutput, error)
	ExportCSV(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
