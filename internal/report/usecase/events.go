package usecase

import (
	"context"

	"image-insights-srv/internal/event"
	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
	"image-insights-srv/pkg/paginator"
)

// collectEvents drains the caller's event log page by page in recorded
// order until the filter is exhausted.
func (uc *implUseCase) collectEvents(ctx context.Context, sc model.Scope, f report.Filters) ([]model.AnalyticsEvent, error) {
	var collected []model.AnalyticsEvent

	for page := 1; ; page++ {
		out, err := uc.eventUC.List(ctx, sc, event.ListInput{
			ImageID:   f.ImageID,
			EventType: f.EventType,
			From:      f.From,
			To:        f.To,
			Paginate: paginator.PaginateQuery{
				Page:  page,
				Limit: uc.cfg.PageLimit,
			},
		})
		if err != nil {
			uc.l.Errorf(ctx, "report.usecase.collectEvents: List failed: %v", err)
			return nil, report.ErrEventSourceFailed
		}

		collected = append(collected, out.Events...)

		if int64(len(collected)) >= out.Paginator.Total || len(out.Events) == 0 {
			break
		}
	}

	return collected, nil
}
