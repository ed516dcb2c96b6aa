package repository

import (
	"context"

	"github.com/rbandrews2/crewclock/internal/domain"
)

type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListActive(ctx context.Context) ([]*domain.Job, error)
	Deactivate(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListActiveByJob(ctx context.Context, jobID string) ([]*domain.Task, error)
	Deactivate(ctx context.Context, id string) error
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// GetOpen returns the user's single open entry, or ErrNotFound.
	GetOpen(ctx context.Context, userID string) (*domain.TimeEntry, error)
	// ListRecent returns the user's entries, most recent clock-in first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.TimeEntry, error)
	// Close persists the clock-out fields of e. Only rows still open are
	// eligible; closing an entry that was already closed elsewhere returns
	// ErrNotFound.
	Close(ctx context.Context, e *domain.TimeEntry) error
}
