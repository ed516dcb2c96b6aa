package service

import (
	"context"

	"github.com/rbandrews2/crewclock/internal/domain"
)

// ClockService owns the clock-in/clock-out lifecycle. State is always derived
// from the store's open entry, never cached: a user is on the clock exactly
// when an entry with no clock-out exists.
type ClockService interface {
	// ClockIn opens a new entry for the user, snapshotting the task's
	// current rate and the job/task labels. Valid only while off the clock.
	ClockIn(ctx context.Context, userID, jobID, taskID, note string) (*domain.TimeEntry, error)
	// ClockOut closes the user's open entry, deriving duration and gross
	// pay from the entry's own snapshot, atomically.
	ClockOut(ctx context.Context, userID string) (*domain.TimeEntry, error)
	// Status returns the user's open entry, or nil when off the clock.
	Status(ctx context.Context, userID string) (*domain.TimeEntry, error)
}

// CatalogService reads the active job/task catalogs and, when constructed
// with the admin capability, mutates them. Catalog rows are never deleted;
// deactivation is the only retirement path.
type CatalogService interface {
	ListJobs(ctx context.Context) ([]*domain.Job, error)
	ListTasks(ctx context.Context, jobID string) ([]*domain.Task, error)

	CreateJob(ctx context.Context, name, code string) (*domain.Job, error)
	CreateTask(ctx context.Context, jobID, name string, payRate float64, sortOrder int) (*domain.Task, error)
	DeactivateJob(ctx context.Context, id string) error
	DeactivateTask(ctx context.Context, id string) error
}

// TimesheetService is the client-side reconciled view over the user's
// entries. Every call re-reads the store.
type TimesheetService interface {
	// Recent returns the user's most recent entries (newest first, bounded)
	// together with the open entry reference, nil when off the clock.
	Recent(ctx context.Context, userID string) ([]*domain.TimeEntry, *domain.TimeEntry, error)
}
