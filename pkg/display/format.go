package display

import (
	"fmt"
	"math"
	"strconv"
)

// FormatElapsed renders a number of seconds as "D days HH:MM:SS", adding a
// six-digit microsecond fraction when one is present (e.g. mean durations).
// Durations are non-negative; the loader rejects negative trip durations.
func FormatElapsed(seconds float64) string {
	micros := int64(math.Round(seconds * 1e6))
	const (
		perSecond = int64(1e6)
		perMinute = 60 * perSecond
		perHour   = 60 * perMinute
		perDay    = 24 * perHour
	)
	days := micros / perDay
	micros %= perDay
	h := micros / perHour
	micros %= perHour
	m := micros / perMinute
	micros %= perMinute
	s := micros / perSecond
	frac := micros % perSecond

	out := fmt.Sprintf("%d days %02d:%02d:%02d", days, h, m, s)
	if frac != 0 {
		out += fmt.Sprintf(".%06d", frac)
	}
	return out
}

// FormatSeconds renders a wall-clock measurement for the "This took" line.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
