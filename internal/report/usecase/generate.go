package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
	"image-insights-srv/internal/report/repository"
	"image-insights-srv/pkg/minio"
)

const csvContentType = "text/csv"

// Generate aggregates the caller's recorded events into a summary,
// uploads the CSV artifact and persists the report record.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (report.GenerateOutput, error) {
	start := uc.clock.Now()

	events, err := uc.collectEvents(ctx, sc, input.Filters)
	if err != nil {
		return report.GenerateOutput{}, err
	}

	filtersJSON, hash, err := hashFilters(input.Filters)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: hashFilters failed: %v", err)
		return report.GenerateOutput{}, report.ErrPersistFailed
	}

	rec := model.Report{
		ID:         uuid.NewString(),
		ImageID:    input.Filters.ImageID,
		UserID:     sc.UserID,
		Title:      input.Title,
		ParamsHash: hash,
		Filters:    filtersJSON,
		Status:     report.StatusProcessing,
		FileFormat: report.FileFormatCSV,
		CreatedAt:  start,
		UpdatedAt:  start,
	}

	rec, err = uc.repo.CreateReport(ctx, repository.CreateReportOptions{Report: rec})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: CreateReport failed: %v", err)
		return report.GenerateOutput{}, report.ErrPersistFailed
	}

	summary := summarize(events)

	data, _, err := buildCSV(events)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: buildCSV failed: %v", err)
		return report.GenerateOutput{}, uc.markFailed(ctx, rec.ID, err)
	}

	objectName := fmt.Sprintf("reports/%s.csv", rec.ID)
	_, err = uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.Bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: csvContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: UploadFile failed: %v", err)
		return report.GenerateOutput{}, uc.markFailed(ctx, rec.ID, err)
	}

	completedAt := uc.clock.Now()
	rec, err = uc.repo.UpdateReport(ctx, repository.UpdateReportOptions{
		ID:               rec.ID,
		Status:           report.StatusCompleted,
		FileURL:          objectName,
		FileSizeBytes:    int64(len(data)),
		FileFormat:       report.FileFormatCSV,
		TotalEvents:      len(events),
		GenerationTimeMs: completedAt.Sub(start).Milliseconds(),
		CompletedAt:      &completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: UpdateReport failed: %v", err)
		return report.GenerateOutput{}, report.ErrPersistFailed
	}

	uc.cacheSummary(ctx, rec.ID, summary)

	uc.l.Infof(ctx, "report.usecase.Generate: report %s completed with %d events", rec.ID, len(events))
	return report.GenerateOutput{Report: rec, Summary: summary}, nil
}

// markFailed records the failure reason; the original cause is reported
// as a storage error.
func (uc *implUseCase) markFailed(ctx context.Context, id string, cause error) error {
	if _, err := uc.repo.UpdateReport(ctx, repository.UpdateReportOptions{
		ID:           id,
		Status:       report.StatusFailed,
		ErrorMessage: cause.Error(),
		FileFormat:   report.FileFormatCSV,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.markFailed: UpdateReport failed: %v", err)
	}

	return report.ErrStorageFailed
}

func (uc *implUseCase) cacheSummary(ctx context.Context, id string, summary report.Summary) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.cacheSummary: marshal failed: %v", err)
		return
	}

	if err := uc.cache.SetSummary(ctx, id, data, uc.cfg.SummaryTTL); err != nil {
		uc.l.Warnf(ctx, "report.usecase.cacheSummary: SetSummary failed: %v", err)
	}
}

// hashFilters produces the canonical filter serialization and its digest,
// used to recognize reports generated from identical parameters.
func hashFilters(f report.Filters) ([]byte, string, error) {
	canonical := struct {
		ImageID   string `json:"image_id"`
		EventType string `json:"event_type"`
		From      *int64 `json:"from"`
		To        *int64 `json:"to"`
	}{
		ImageID:   f.ImageID,
		EventType: f.EventType,
	}
	if f.From != nil {
		ms := f.From.UnixMilli()
		canonical.From = &ms
	}
	if f.To != nil {
		ms := f.To.UnixMilli()
		canonical.To = &ms
	}

	raw, err := json.Marshal(canonical)
	if err != nil {
		return nil, "", err
	}

	sum := sha256.Sum256(raw)
	return raw, hex.EncodeToString(sum[:]), nil
}
