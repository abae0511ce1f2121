package usecase

import (
	"context"
	"fmt"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
)

// ExportCSV renders the caller's recorded events as a CSV payload without
// persisting a report record.
func (uc *implUseCase) ExportCSV(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	events, err := uc.collectEvents(ctx, sc, input.Filters)
	if err != nil {
		return report.ExportOutput{}, err
	}

	data, rows, err := buildCSV(events)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ExportCSV: buildCSV failed: %v", err)
		return report.ExportOutput{}, report.ErrStorageFailed
	}

	filename := fmt.Sprintf("image-insights-%s.csv", uc.clock.Now().UTC().Format("20060102-150405"))

	return report.ExportOutput{
		Filename:    filename,
		ContentType: csvContentType,
		Data:        data,
		Rows:        rows,
	}, nil
}
