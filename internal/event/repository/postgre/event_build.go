package postgre

import (
	"fmt"
	"strings"

	"image-insights-srv/internal/event/repository"
)

const eventColumns = "id, session_id, ts, event_type, image_id, device_type, duration_ms, engagement_score, load_time_ms, details"

// buildListFilter assembles the WHERE clause and its arguments from the
// list options. Placeholders are numbered for lib/pq.
func buildListFilter(opt repository.ListEventsOptions) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	next := func() string {
		return fmt.Sprintf("$%d", len(args))
	}

	if opt.SessionID != "" {
		args = append(args, opt.SessionID)
		conditions = append(conditions, "session_id = "+next())
	}
	if opt.ImageID != "" {
		args = append(args, opt.ImageID)
		conditions = append(conditions, "image_id = "+next())
	}
	if opt.EventType != "" {
		args = append(args, opt.EventType)
		conditions = append(conditions, "event_type = "+next())
	}
	if opt.From != nil {
		args = append(args, *opt.From)
		conditions = append(conditions, "ts >= "+next())
	}
	if opt.To != nil {
		args = append(args, *opt.To)
		conditions = append(conditions, "ts <= "+next())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
