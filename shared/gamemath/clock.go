package gamemath

import (
	"fmt"
	"math"
)

// FormatClock renders seconds as M:SS.mmm. Negative values read as zero.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	ms := int64(math.Floor(seconds * 1000))
	minutes := ms / 60000
	secs := (ms / 1000) % 60
	return fmt.Sprintf("%d:%02d.%03d", minutes, secs, ms%1000)
}
