package helper_util

import (
	"fmt"
	"time"
)

// ParseTime accepts either a native time or an RFC3339 string, as stored
// in node properties.
func ParseTime(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	case nil:
		return time.Time{}, fmt.Errorf("missing time value")
	default:
		return time.Time{}, fmt.Errorf("unsupported type for time parsing: %T", value)
	}
}

// FormatTime is the inverse of ParseTime for string storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
