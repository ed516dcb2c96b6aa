package domain

import (
	"fmt"
	"strings"
	"time"
)

// Job is a billable job title crews select when clocking in, e.g.
// "Day Shift – Route 220". Jobs are never hard-deleted; deactivation is the
// only retirement path so historical entries keep valid references.
type Job struct {
	ID        string
	Name      string
	Code      string
	Active    bool
	CreatedAt time.Time
}

// ValidateName checks that the job name is non-empty after trimming.
func (j *Job) ValidateName() error {
	if strings.TrimSpace(j.Name) == "" {
		return fmt.Errorf("job name is required: %w", ErrValidation)
	}
	return nil
}

// Label returns the display label for the job, appending the code when set.
func (j *Job) Label() string {
	if j.Code != "" {
		return fmt.Sprintf("%s (%s)", j.Name, j.Code)
	}
	return j.Name
}
