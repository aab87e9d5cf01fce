package report

import "fmt"

var timeUnits = [...]string{"ns", "us", "ms", "s"}

// FormatDuration renders nanoseconds with three significant digits and
// the largest unit that keeps the value under 1000, capped at seconds.
func FormatDuration(nanos float64) string {
	idx := 0
	for nanos >= 1000 && idx < len(timeUnits)-1 {
		nanos /= 1000
		idx++
	}
	return fmt.Sprintf("%.3g%s", nanos, timeUnits[idx])
}
