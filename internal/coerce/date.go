package coerce

import (
	"encoding/json"
	"strings"
	"time"
)

// ShortDateLayout is the rendering used by ToShortDateString.
const ShortDateLayout = "01/02/2006"

// dateLayouts are tried in order against string input.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	ShortDateLayout,
}

// ToDate parses v into a time. Nil and unparseable values return the zero
// time, which IsValidDate reports as invalid. Numbers are unix seconds,
// except 0, which upstream uses as an unset placeholder.
func ToDate(v any) time.Time {
	switch val := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}

		return *val
	case string:
		return parseDate(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return fromUnix(i)
		}

		return parseDate(val.String())
	}

	if f, ok := asFloat(v); ok {
		return fromUnix(int64(f))
	}

	return time.Time{}
}

// ToShortDateString renders v as MM/DD/YYYY, or "" when it is not a valid date.
func ToShortDateString(v any) string {
	t := ToDate(v)
	if !IsValidDate(t) {
		return ""
	}

	return t.Format(ShortDateLayout)
}

// IsValidDate reports whether t is not the invalid-date sentinel.
func IsValidDate(t time.Time) bool {
	return !t.IsZero()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}

	return time.Unix(sec, 0).UTC()
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
