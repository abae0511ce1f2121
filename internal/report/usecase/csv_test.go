package usecase

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/report"
)

func sampleEvents() []model.AnalyticsEvent {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return []model.AnalyticsEvent{
		{
			ID:              "e1",
			SessionID:       "s1",
			Timestamp:       ts,
			EventType:       model.EventTypeView,
			ImageID:         "img-1",
			DeviceType:      model.DeviceDesktop,
			DurationMs:      5000,
			EngagementScore: 62.5,
			LoadTimeMs:      800,
			Details:         map[string]string{"zoom": "2x", "area": "hero"},
		},
		{
			ID:              "e2",
			SessionID:       "s1",
			Timestamp:       ts.Add(time.Second),
			EventType:       model.EventTypeDownload,
			ImageID:         "img-1",
			DeviceType:      model.DeviceMobile,
			DurationMs:      1200,
			EngagementScore: 90,
			LoadTimeMs:      650,
		},
		{
			ID:              "e3",
			SessionID:       "s1",
			Timestamp:       ts.Add(2 * time.Second),
			EventType:       model.EventTypeInteraction,
			ImageID:         "img-2",
			DeviceType:      model.DeviceDesktop,
			DurationMs:      300,
			EngagementScore: 40,
			LoadTimeMs:      700,
		},
	}
}

func TestBuildCSV(t *testing.T) {
	t.Run("header and row order", func(t *testing.T) {
		data, rows, err := buildCSV(sampleEvents())
		if err != nil {
			t.Fatalf("buildCSV failed: %v", err)
		}
		if rows != 3 {
			t.Errorf("Row count mismatch: got %d, want 3", rows)
		}

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("CSV should round-trip through a reader: %v", err)
		}

		if !reflect.DeepEqual(records[0], csvHeader) {
			t.Errorf("Header mismatch: got %v, want %v", records[0], csvHeader)
		}
		if len(records) != 4 {
			t.Fatalf("Record count mismatch: got %d, want 4", len(records))
		}

		first := records[1]
		if first[0] != "2026-01-15T12:00:00Z" {
			t.Errorf("Date mismatch: got %s", first[0])
		}
		if first[1] != model.EventTypeView || first[2] != "img-1" || first[3] != model.DeviceDesktop {
			t.Errorf("Row content mismatch: %v", first)
		}
		if first[4] != "5000" || first[5] != "62.50" || first[6] != "800" {
			t.Errorf("Numeric columns mismatch: %v", first)
		}
	})

	t.Run("details serialize deterministically", func(t *testing.T) {
		events := sampleEvents()

		first, _, err := buildCSV(events)
		if err != nil {
			t.Fatalf("buildCSV failed: %v", err)
		}
		second, _, err := buildCSV(events)
		if err != nil {
			t.Fatalf("buildCSV failed: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Error("Identical events should render identical CSV")
		}
	})

	t.Run("empty details leave column blank", func(t *testing.T) {
		data, _, err := buildCSV(sampleEvents())
		if err != nil {
			t.Fatalf("buildCSV failed: %v", err)
		}

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if records[2][7] != "" {
			t.Errorf("Expected empty details column, got %q", records[2][7])
		}
	})

	t.Run("no events yields header only", func(t *testing.T) {
		data, rows, err := buildCSV(nil)
		if err != nil {
			t.Fatalf("buildCSV failed: %v", err)
		}
		if rows != 0 {
			t.Errorf("Row count mismatch: got %d, want 0", rows)
		}

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("Expected header only, got %d records", len(records))
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("counts and averages", func(t *testing.T) {
		summary := summarize(sampleEvents())

		if summary.TotalEvents != 3 || summary.Views != 1 || summary.Downloads != 1 || summary.Interactions != 1 {
			t.Errorf("Count mismatch: %+v", summary)
		}
		if summary.UniqueImages != 2 {
			t.Errorf("UniqueImages mismatch: got %d, want 2", summary.UniqueImages)
		}
		if summary.DeviceBreakdown[model.DeviceDesktop] != 2 || summary.DeviceBreakdown[model.DeviceMobile] != 1 {
			t.Errorf("DeviceBreakdown mismatch: %v", summary.DeviceBreakdown)
		}

		wantEngagement := (62.5 + 90 + 40) / 3
		if summary.AvgEngagement != wantEngagement {
			t.Errorf("AvgEngagement mismatch: got %.4f, want %.4f", summary.AvgEngagement, wantEngagement)
		}
		wantDuration := (5000.0 + 1200 + 300) / 3
		if summary.AvgDurationMs != wantDuration {
			t.Errorf("AvgDurationMs mismatch: got %.4f, want %.4f", summary.AvgDurationMs, wantDuration)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		summary := summarize(nil)

		if summary.TotalEvents != 0 || summary.AvgEngagement != 0 {
			t.Errorf("Empty summary should be zero valued: %+v", summary)
		}
		if summary.DeviceBreakdown == nil {
			t.Error("DeviceBreakdown should be initialized")
		}
	})
}

func TestHashFilters(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("stable for equal filters", func(t *testing.T) {
		f := report.Filters{ImageID: "img-1", EventType: model.EventTypeView, From: &from, To: &to}

		_, first, err := hashFilters(f)
		if err != nil {
			t.Fatalf("hashFilters failed: %v", err)
		}
		_, second, err := hashFilters(f)
		if err != nil {
			t.Fatalf("hashFilters failed: %v", err)
		}

		if first != second {
			t.Errorf("Hash should be stable: %s vs %s", first, second)
		}
	})

	t.Run("distinct for different filters", func(t *testing.T) {
		_, first, err := hashFilters(report.Filters{ImageID: "img-1"})
		if err != nil {
			t.Fatalf("hashFilters failed: %v", err)
		}
		_, second, err := hashFilters(report.Filters{ImageID: "img-2"})
		if err != nil {
			t.Fatalf("hashFilters failed: %v", err)
		}

		if first == second {
			t.Error("Different filters should hash differently")
		}
	})
}
