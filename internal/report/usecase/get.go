package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
	"image-insights-srv/internal/report/repository"
	"image-insights-srv/pkg/minio"
)

// Get returns a report record together with its cached summary when the
// cache still holds it.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input report.GetInput) (report.GetOutput, error) {
	rec, err := uc.repo.GetReport(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return report.GetOutput{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Get: GetReport failed: %v", err)
		return report.GetOutput{}, report.ErrPersistFailed
	}

	out := report.GetOutput{Report: rec}

	if uc.cache != nil {
		if data, err := uc.cache.GetSummary(ctx, rec.ID); err == nil {
			var summary report.Summary
			if err := json.Unmarshal(data, &summary); err == nil {
				out.Summary = &summary
			}
		}
	}

	return out, nil
}

// Download presigns a short-lived URL for a completed report's artifact.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, input report.DownloadInput) (report.DownloadOutput, error) {
	rec, err := uc.repo.GetReport(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return report.DownloadOutput{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Download: GetReport failed: %v", err)
		return report.DownloadOutput{}, report.ErrPersistFailed
	}

	if rec.Status != report.StatusCompleted || rec.FileURL == "" {
		return report.DownloadOutput{}, report.ErrReportNotReady
	}

	resp, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.Bucket,
		ObjectName: rec.FileURL,
		Expiry:     uc.cfg.PresignExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Download: GetPresignedDownloadURL failed: %v", err)
		return report.DownloadOutput{}, report.ErrStorageFailed
	}

	return report.DownloadOutput{
		URL:       resp.URL,
		ExpiresAt: resp.ExpiresAt,
	}, nil
}
