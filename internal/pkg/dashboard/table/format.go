package table

import (
	"strconv"
	"time"
)

// YesNo renders a boolean field.
func YesNo(v any) string {
	if b, ok := v.(bool); ok && b {
		return "Yes"
	}
	return "No"
}

// Date renders an RFC 3339 timestamp field as "Jan 2, 2006"; other values are stringified.
func Date(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return Stringify(v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// Money renders a numeric field with two decimals.
func Money(v any) string {
	f, ok := v.(float64)
	if !ok {
		return Stringify(v)
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
