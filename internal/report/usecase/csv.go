package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"image-insights-srv/internal/model"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"Date", "Type", "ID", "Device", "Duration", "Engagement", "LoadTime", "Details"}

// buildCSV renders events as RFC 4180 CSV, one row per event in recorded
// order. Details serialize as compact JSON with deterministic key order.
func buildCSV(events []model.AnalyticsEvent) ([]byte, int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, 0, err
	}

	for _, e := range events {
		details := ""
		if len(e.Details) > 0 {
			raw, err := json.Marshal(e.Details)
			if err != nil {
				return nil, 0, err
			}
			details = string(raw)
		}

		row := []string{
			e.Timestamp.UTC().Format(time.RFC3339),
			e.EventType,
			e.ImageID,
			e.DeviceType,
			strconv.FormatInt(e.DurationMs, 10),
			strconv.FormatFloat(e.EngagementScore, 'f', 2, 64),
			strconv.FormatInt(e.LoadTimeMs, 10),
			details,
		}
		if err := w.Write(row); err != nil {
			return nil, 0, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), len(events), nil
}
