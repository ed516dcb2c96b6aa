package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a billable activity belonging to exactly one Job, carrying the
// hourly rate crews earn while clocked in on it. PayRate is mutable going
// forward but never rewrites history: entries snapshot the rate at clock-in.
type Task struct {
	ID        string
	JobID     string
	Name      string
	PayRate   float64
	PayUnit   PayUnit
	SortOrder int
	Active    bool
	CreatedAt time.Time
}

// Validate checks the fields an admin supplies when creating a task.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required: %w", ErrValidation)
	}
	if t.JobID == "" {
		return fmt.Errorf("task must belong to a job: %w", ErrValidation)
	}
	if t.PayRate < 0 {
		return fmt.Errorf("pay rate must be >= 0, got %.2f: %w", t.PayRate, ErrValidation)
	}
	if !ValidPayUnits[t.PayUnit] {
		return fmt.Errorf("unsupported pay unit %q: %w", t.PayUnit, ErrValidation)
	}
	return nil
}
