package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rbandrews2/crewclock/internal/domain"
	"github.com/rbandrews2/crewclock/internal/repository"
)

type catalogService struct {
	jobs    repository.JobRepo
	tasks   repository.TaskRepo
	isAdmin bool
}

// NewCatalogService creates a CatalogService. The isAdmin capability gates
// every mutating operation; reads are open to all users.
func NewCatalogService(jobs repository.JobRepo, tasks repository.TaskRepo, isAdmin bool) CatalogService {
	return &catalogService{jobs: jobs, tasks: tasks, isAdmin: isAdmin}
}

func (s *catalogService) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, persistenceErr("listing jobs", err)
	}
	return jobs, nil
}

func (s *catalogService) ListTasks(ctx context.Context, jobID string) ([]*domain.Task, error) {
	if jobID == "" {
		return nil, fmt.Errorf("job is required: %w", domain.ErrValidation)
	}
	tasks, err := s.tasks.ListActiveByJob(ctx, jobID)
	if err != nil {
		return nil, persistenceErr("listing tasks", err)
	}
	return tasks, nil
}

func (s *catalogService) CreateJob(ctx context.Context, name, code string) (*domain.Job, error) {
	if !s.isAdmin {
		return nil, ErrAdminRequired
	}

	job := &domain.Job{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Code:      strings.TrimSpace(code),
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := job.ValidateName(); err != nil {
		return nil, err
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, persistenceErr("saving job", err)
	}

	stored, err := s.jobs.GetByID(ctx, job.ID)
	if err != nil {
		return nil, persistenceErr("reloading job", err)
	}
	return stored, nil
}

func (s *catalogService) CreateTask(ctx context.Context, jobID, name string, payRate float64, sortOrder int) (*domain.Task, error) {
	if !s.isAdmin {
		return nil, ErrAdminRequired
	}

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

	task := &domain.Task{
		ID:        uuid.New().String(),
		JobID:     job.ID,
		Name:      strings.TrimSpace(name),
		PayRate:   payRate,
		PayUnit:   domain.PayUnitHour,
		SortOrder: sortOrder,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, persistenceErr("saving task", err)
	}

	stored, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, persistenceErr("reloading task", err)
	}
	return stored, nil
}

func (s *catalogService) DeactivateJob(ctx context.Context, id string) error {
	if !s.isAdmin {
		return ErrAdminRequired
	}
	if err := s.jobs.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("unknown job %q: %w", id, domain.ErrValidation)
		}
		return persistenceErr("deactivating job", err)
	}
	return nil
}

func (s *catalogService) DeactivateTask(ctx context.Context, id string) error {
	if !s.isAdmin {
		return ErrAdminRequired
	}
	if err := s.tasks.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("unknown task %q: %w", id, domain.ErrValidation)
		}
		return persistenceErr("deactivating task", err)
	}
	return nil
}
