// utils/timeutil.go
package utils

import (
	"time"

	"go.uber.org/zap"
)

// LoadLocationOrUTC resolves an IANA zone name, falling back to UTC
// when the name is empty or unknown to the host tz database.
func LoadLocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		zap.L().Warn("unknown time zone, falling back to UTC", zap.String("tz", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// Format helpers
func FormatRFC3339In(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

func FormatRFC3339Ptr(t *time.Time, loc *time.Location) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.In(loc).Format(time.RFC3339)
	return &s
}
