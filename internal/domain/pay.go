package domain

import (
	"math"
	"time"
)

// DurationSeconds returns whole elapsed seconds between in and out, floored
// and clamped to zero so a clock skew can never produce a negative duration.
func DurationSeconds(in, out time.Time) int {
	secs := int(math.Floor(out.Sub(in).Seconds()))
	if secs < 0 {
		return 0
	}
	return secs
}

// GrossPay computes the wage for a closed entry: hours times the hourly rate
// snapshot, rounded half-up to the cent.
func GrossPay(durationSeconds int, payRateAtTime float64) float64 {
	hours := float64(durationSeconds) / 3600
	return math.Round(hours*payRateAtTime*100) / 100
}
