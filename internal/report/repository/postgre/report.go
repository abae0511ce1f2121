package postgre

import (
	"context"
	"database/sql"
	"errors"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report/repository"
)

const reportColumns = `id, image_id, user_id, title, params_hash, filters, status, error_message,
	file_url, file_size_bytes, file_format, total_events, generation_time_ms,
	completed_at, created_at, updated_at`

// CreateReport inserts a new report record in PROCESSING state.
func (r *implRepository) CreateReport(ctx context.Context, opt repository.CreateReportOptions) (model.Report, error) {
	rec := opt.Report

	query := `INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.ImageID, rec.UserID, rec.Title, rec.ParamsHash, []byte(rec.Filters),
		rec.Status, rec.ErrorMessage, rec.FileURL, rec.FileSizeBytes, rec.FileFormat,
		rec.TotalEvents, rec.GenerationTimeMs, rec.CompletedAt, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateReport: insert failed: %v", err)
		return model.Report{}, err
	}

	return rec, nil
}

// UpdateReport finalizes a report record after generation succeeds or fails.
func (r *implRepository) UpdateReport(ctx context.Context, opt repository.UpdateReportOptions) (model.Report, error) {
	query := `UPDATE reports SET
			status = $2,
			error_message = $3,
			file_url = $4,
			file_size_bytes = $5,
			file_format = $6,
			total_events = $7,
			generation_time_ms = $8,
			completed_at = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reportColumns

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Status, opt.ErrorMessage, opt.FileURL, opt.FileSizeBytes,
		opt.FileFormat, opt.TotalEvents, opt.GenerationTimeMs, opt.CompletedAt,
	)

	rec, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Report{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "report.repository.postgre.UpdateReport: update failed: %v", err)
		return model.Report{}, err
	}

	return rec, nil
}

// GetReport fetches a single report record by ID.
func (r *implRepository) GetReport(ctx context.Context, id string) (model.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	rec, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Report{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "report.repository.postgre.GetReport: query failed: %v", err)
		return model.Report{}, err
	}

	return rec, nil
}

func scanReport(row *sql.Row) (model.Report, error) {
	var (
		rec     model.Report
		filters []byte
	)

	if err := row.Scan(
		&rec.ID, &rec.ImageID, &rec.UserID, &rec.Title, &rec.ParamsHash, &filters,
		&rec.Status, &rec.ErrorMessage, &rec.FileURL, &rec.FileSizeBytes, &rec.FileFormat,
		&rec.TotalEvents, &rec.GenerationTimeMs, &rec.CompletedAt, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return model.Report{}, err
	}

	rec.Filters = filters
	return rec, nil
}
