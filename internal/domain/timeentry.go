package domain

import (
	"fmt"
	"time"
)

// TimeEntry is one clock-in/clock-out cycle for one user. The pay rate and
// job/task labels are captured at clock-in and immutable thereafter, so later
// catalog edits never rewrite what an entry was worth. DurationSeconds and
// GrossPay stay nil while the entry is open and are set exactly once, at
// clock-out.
type TimeEntry struct {
	ID              string
	UserID          string
	JobID           string
	TaskID          string
	ClockIn         time.Time
	ClockOut        *time.Time
	DurationSeconds *int
	PayRateAtTime   float64
	JobLabelAtTime  string
	TaskLabelAtTime string
	Note            string
	GrossPay        *float64
	CreatedAt       time.Time
}

// Open reports whether the entry is still on the clock.
func (e *TimeEntry) Open() bool {
	return e.ClockOut == nil
}

// Close stamps the clock-out time and derives duration and gross pay from the
// entry's own rate snapshot. Closing an already-closed entry is refused so the
// derived values can never be recomputed.
func (e *TimeEntry) Close(at time.Time) error {
	if !e.Open() {
		return fmt.Errorf("entry %s is already closed: %w", e.ID, ErrConflict)
	}
	out := at
	secs := DurationSeconds(e.ClockIn, out)
	gross := GrossPay(secs, e.PayRateAtTime)

	e.ClockOut = &out
	e.DurationSeconds = &secs
	e.GrossPay = &gross
	return nil
}

// Hours returns the entry's duration in hours, 0 while open.
func (e *TimeEntry) Hours() float64 {
	if e.DurationSeconds == nil {
		return 0
	}
	return float64(*e.DurationSeconds) / 3600
}
