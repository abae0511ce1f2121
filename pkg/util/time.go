package util

import "time"

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"
)

// MillisecondsToTime converts a Unix-milliseconds timestamp to time.Time.
func MillisecondsToTime(ms int64) time.Time {
	seconds := ms / 1000
	nanoseconds := (ms % 1000) * 1000000
	return time.Unix(seconds, nanoseconds)
}

// TimeToMilliseconds converts a time.Time to Unix milliseconds.
func TimeToMilliseconds(t time.Time) int64 {
	return t.UnixMilli()
}

// DateTimeToStr formats a datetime using DateTimeFormat.
func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// DateToStr formats a date using DateFormat.
func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

// StartOfDay truncates a time to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of the day in its location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
