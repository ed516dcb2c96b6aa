package report

import (
	"fmt"
	"time"

	"github.com/rbandrews2/crewclock/internal/domain"
)

// JobAll matches every job in a filter.
const JobAll = "all"

// Result is a filtered, totaled projection over a set of time entries,
// ready for display or export.
type Result struct {
	Entries    []*domain.TimeEntry
	TotalHours float64
	TotalGross float64
}

// Apply projects entries down to those whose clock-in falls on a calendar
// date within [start, end] (inclusive, evaluated in loc) and whose job
// matches jobID ("all" or empty matches everything). Totals count only
// closed entries; an open entry contributes nothing.
func Apply(entries []*domain.TimeEntry, jobID string, start, end *time.Time, loc *time.Location) Result {
	if loc == nil {
		loc = time.Local
	}

	var lower, upper time.Time
	if start != nil {
		y, m, d := start.In(loc).Date()
		lower = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	if end != nil {
		y, m, d := end.In(loc).Date()
		upper = time.Date(y, m, d, 23, 59, 59, 0, loc)
	}

	var res Result
	for _, e := range entries {
		if jobID != "" && jobID != JobAll && e.JobID != jobID {
			continue
		}
		ci := e.ClockIn.In(loc)
		if start != nil && ci.Before(lower) {
			continue
		}
		if end != nil && ci.After(upper) {
			continue
		}

		res.Entries = append(res.Entries, e)
		if e.DurationSeconds != nil {
			res.TotalHours += float64(*e.DurationSeconds) / 3600
		}
		if e.GrossPay != nil {
			res.TotalGross += *e.GrossPay
		}
	}
	return res
}

// Meta carries the identity and range context an export is labeled with.
type Meta struct {
	Email string
	Start *time.Time
	End   *time.Time
	Loc   *time.Location
}

// RangeLabel renders the active date range, with "Any" for open ends.
func (m Meta) RangeLabel() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "Any"
		}
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%s – %s", format(m.Start), format(m.End))
}

func (m Meta) location() *time.Location {
	if m.Loc == nil {
		return time.Local
	}
	return m.Loc
}

// EntryDate renders an entry's clock-in timestamp in the export's location.
func (m Meta) EntryDate(e *domain.TimeEntry) string {
	return e.ClockIn.In(m.location()).Format("2006-01-02 15:04")
}

// JobTaskLabel renders the snapshotted "job / task" label pair, with an
// em dash placeholder for labels missing on legacy rows.
func JobTaskLabel(e *domain.TimeEntry) string {
	job := e.JobLabelAtTime
	if job == "" {
		job = "—"
	}
	task := e.TaskLabelAtTime
	if task == "" {
		task = "—"
	}
	return job + " / " + task
}

// FormatEntryHours renders an entry's hours to two decimals, "0.00" while open.
func FormatEntryHours(e *domain.TimeEntry) string {
	return fmt.Sprintf("%.2f", e.Hours())
}

// FormatEntryPay renders an entry's gross pay as $X.XX, or an em dash while open.
func FormatEntryPay(e *domain.TimeEntry) string {
	if e.GrossPay == nil {
		return "—"
	}
	return fmt.Sprintf("$%.2f", *e.GrossPay)
}
