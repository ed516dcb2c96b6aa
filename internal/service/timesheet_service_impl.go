package service

import (
	"context"
	"fmt"

	"github.com/rbandrews2/crewclock/internal/domain"
	"github.com/rbandrews2/crewclock/internal/repository"
)

// recentWindow bounds the reconciled timesheet view. Reports and exports
// operate over this window, matching what the store serves the session.
const recentWindow = 50

type timesheetService struct {
	entries repository.EntryRepo
}

func NewTimesheetService(entries repository.EntryRepo) TimesheetService {
	return &timesheetService{entries: entries}
}

func (s *timesheetService) Recent(ctx context.Context, userID string) ([]*domain.TimeEntry, *domain.TimeEntry, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("user identity is required: %w", domain.ErrValidation)
	}

	entries, err := s.entries.ListRecent(ctx, userID, recentWindow)
	if err != nil {
		return nil, nil, persistenceErr("listing recent entries", err)
	}

	// The open entry reference is derived from the same read, not tracked
	// separately, so the view can't disagree with itself.
	var open *domain.TimeEntry
	for _, e := range entries {
		if e.Open() {
			open = e
			break
		}
	}
	return entries, open, nil
}
