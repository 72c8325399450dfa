package store

import (
	"fmt"
	"math"
)

// FormatMinutes renders a burn window given in minutes as a
// human-readable duration: "infinite" for zero, seconds below one
// minute, then minutes, hours and days with singular/plural chosen
// from the rendered integer value. Partial hours and days truncate,
// so 90 minutes reads "1 hour".
func FormatMinutes(m float64) string {
	switch {
	case m == 0:
		return "infinite"
	case m < 1:
		return plural(int(math.Round(m*60)), "second")
	case m < 60:
		return plural(int(m), "minute")
	case m < 1440:
		return plural(int(m/60), "hour")
	default:
		return plural(int(m/1440), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
