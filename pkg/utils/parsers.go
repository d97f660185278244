package utils

import (
	"fmt"
	"strings"
	"time"
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a trip timestamp in any of the layouts found in the
// city exports. Fractional seconds are accepted on the first two layouts.
func ParseTimestamp(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if i := strings.IndexByte(s, '.'); i > 0 && strings.Count(s, ":") == 2 {
		s = s[:i]
	}

	var err error
	for _, f := range timestampLayouts {
		var parsed time.Time
		parsed, err = time.Parse(f, s)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", input, err)
}
