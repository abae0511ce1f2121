package usecase

import (
	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
)

// summarize folds recorded events into counts and averages. Stored
// engagement scores are used as-is.
func summarize(events []model.AnalyticsEvent) report.Summary {
	summary := report.Summary{
		TotalEvents:     len(events),
		DeviceBreakdown: map[string]int{},
	}

	if len(events) == 0 {
		return summary
	}

	images := map[string]struct{}{}
	var sumEngagement, sumDuration, sumLoadTime float64

	for _, e := range events {
		switch e.EventType {
		case model.EventTypeView:
			summary.Views++
		case model.EventTypeDownload:
			summary.Downloads++
		case model.EventTypeInteraction:
			summary.Interactions++
		}

		if e.DeviceType != "" {
			summary.DeviceBreakdown[e.DeviceType]++
		}
		if e.ImageID != "" {
			images[e.ImageID] = struct{}{}
		}

		sumEngagement += e.EngagementScore
		sumDuration += float64(e.DurationMs)
		sumLoadTime += float64(e.LoadTimeMs)
	}

	n := float64(len(events))
	summary.UniqueImages = len(images)
	summary.AvgEngagement = sumEngagement / n
	summary.AvgDurationMs = sumDuration / n
	summary.AvgLoadTimeMs = sumLoadTime / n

	return summary
}
