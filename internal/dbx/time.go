package dbx

import (
	"database/sql"
	"fmt"
	"time"
)

// TimeLayout stores instants as fixed-width UTC text so that string order
// matches time order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// NullTimeString formats t, or yields NULL for a nil pointer.
func NullTimeString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTime(*t), Valid: true}
}

func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		// Values written by hand or by older tools.
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseNullTime is ParseTime for nullable columns.
func ParseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NullTime wraps t for nullable timestamp parameters.
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
