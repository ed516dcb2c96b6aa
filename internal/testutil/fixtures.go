package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/rbandrews2/crewclock/internal/domain"
)

// Job options
type JobOption func(*domain.Job)

func WithJobCode(code string) JobOption {
	return func(j *domain.Job) {
		j.Code = code
	}
}

func WithJobInactive() JobOption {
	return func(j *domain.Job) {
		j.Active = false
	}
}

func NewTestJob(name string, opts ...JobOption) *domain.Job {
	j := &domain.Job{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Task options
type TaskOption func(*domain.Task)

func WithPayRate(rate float64) TaskOption {
	return func(t *domain.Task) {
		t.PayRate = rate
	}
}

func WithSortOrder(n int) TaskOption {
	return func(t *domain.Task) {
		t.SortOrder = n
	}
}

func WithPayUnit(unit domain.PayUnit) TaskOption {
	return func(t *domain.Task) {
		t.PayUnit = unit
	}
}

func WithTaskInactive() TaskOption {
	return func(t *domain.Task) {
		t.Active = false
	}
}

func NewTestTask(jobID, name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		JobID:     jobID,
		Name:      name,
		PayRate:   18.00,
		PayUnit:   domain.PayUnitHour,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithClockIn(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.ClockIn = t
	}
}

func WithNote(note string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Note = note
	}
}

// Closed stamps the entry as clocked out at the given time, deriving
// duration and gross pay the same way the live path does.
func Closed(at time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		_ = e.Close(at)
	}
}

// NewTestEntry creates an open entry snapshotting the given job and task.
func NewTestEntry(userID string, job *domain.Job, task *domain.Task, opts ...EntryOption) *domain.TimeEntry {
	now := time.Now().UTC()
	e := &domain.TimeEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		JobID:           job.ID,
		TaskID:          task.ID,
		ClockIn:         now,
		PayRateAtTime:   task.PayRate,
		JobLabelAtTime:  job.Label(),
		TaskLabelAtTime: task.Name,
		CreatedAt:       now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
