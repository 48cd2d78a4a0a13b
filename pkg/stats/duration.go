package stats

import (
	"math"
	"time"
)

// Duration is the irrigation run time in hours, wrapping past midnight and
// rounded to one decimal. ok is false when either time is missing or malformed.
func Duration(start, end string) (hours float64, ok bool) {
	if start == "" || end == "" {
		return 0, false
	}
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0, false
	}
	diff := e.Sub(s).Hours()
	if diff < 0 {
		diff += 24
	}
	return math.Round(diff*10) / 10, true
}
