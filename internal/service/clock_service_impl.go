package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rbandrews2/crewclock/internal/db"
	"github.com/rbandrews2/crewclock/internal/domain"
	"github.com/rbandrews2/crewclock/internal/repository"
)

type clockService struct {
	jobs    repository.JobRepo
	tasks   repository.TaskRepo
	entries repository.EntryRepo
	uow     db.UnitOfWork
	now     func() time.Time
}

func NewClockService(jobs repository.JobRepo, tasks repository.TaskRepo, entries repository.EntryRepo, uow db.UnitOfWork) ClockService {
	return &clockService{jobs: jobs, tasks: tasks, entries: entries, uow: uow, now: time.Now}
}

func (s *clockService) ClockIn(ctx context.Context, userID, jobID, taskID, note string) (*domain.TimeEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("user identity is required: %w", domain.ErrValidation)
	}

	// Validation happens entirely against the catalogs before any entry
	// write is attempted.
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("unknown job %q: %w", jobID, domain.ErrValidation)
		}
		return nil, persistenceErr("loading job", err)
	}
	if !job.Active {
		return nil, fmt.Errorf("job %q is no longer active: %w", job.Name, domain.ErrValidation)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("unknown task %q: %w", taskID, domain.ErrValidation)
		}
		return nil, persistenceErr("loading task", err)
	}
	if task.JobID != job.ID {
		return nil, fmt.Errorf("task %q does not belong to job %q: %w", task.Name, job.Name, domain.ErrValidation)
	}
	if !task.Active {
		return nil, fmt.Errorf("task %q is no longer active: %w", task.Name, domain.ErrValidation)
	}
	if !domain.ValidPayUnits[task.PayUnit] {
		return nil, fmt.Errorf("task %q has unsupported pay unit %q; fix the catalog: %w",
			task.Name, task.PayUnit, domain.ErrValidation)
	}

	// Defensive re-check; the store's unique index is the authority.
	if _, err := s.entries.GetOpen(ctx, userID); err == nil {
		return nil, fmt.Errorf("already on the clock: %w", domain.ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, persistenceErr("checking open entry", err)
	}

	now := s.now().UTC()
	entry := &domain.TimeEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		JobID:           job.ID,
		TaskID:          task.ID,
		ClockIn:         now,
		PayRateAtTime:   task.PayRate,
		JobLabelAtTime:  job.Label(),
		TaskLabelAtTime: task.Name,
		Note:            note,
		CreatedAt:       now,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateOpenEntry) {
			return nil, fmt.Errorf("already on the clock: %w", domain.ErrConflict)
		}
		return nil, persistenceErr("saving clock-in", err)
	}

	// Re-read rather than trust the in-memory copy, so a rejected or
	// rewritten insert can't leave the session's view drifting.
	stored, err := s.entries.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, persistenceErr("reloading clock-in", err)
	}
	return stored, nil
}

func (s *clockService) ClockOut(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("user identity is required: %w", domain.ErrValidation)
	}

	var entryID string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)

		open, err := txEntries.GetOpen(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("not on the clock: %w", domain.ErrConflict)
			}
			return persistenceErr("loading open entry", err)
		}

		if err := open.Close(s.now().UTC()); err != nil {
			return err
		}

		if err := txEntries.Close(ctx, open); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("open entry was closed elsewhere: %w", domain.ErrConflict)
			}
			return persistenceErr("saving clock-out", err)
		}

		entryID = open.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, persistenceErr("reloading clock-out", err)
	}
	return stored, nil
}

func (s *clockService) Status(ctx context.Context, userID string) (*domain.TimeEntry, error) {
	open, err := s.entries.GetOpen(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, persistenceErr("loading open entry", err)
	}
	return open, nil
}

// persistenceErr tags a store failure with domain.ErrPersistence while
// keeping the underlying cause in the message.
func persistenceErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrPersistence)
}
