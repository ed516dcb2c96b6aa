package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rbandrews2/crewclock/internal/domain"
)

// resolveJob turns user input into a job ID. It tries, in order: exact code
// match (case-insensitive), exact ID match, then unambiguous ID prefix.
func resolveJob(ctx context.Context, app *App, input string) (*domain.Job, error) {
	if input == "" {
		return nil, fmt.Errorf("job is required")
	}

	jobs, err := app.Catalog.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		if j.Code != "" && strings.EqualFold(j.Code, input) {
			return j, nil
		}
	}
	for _, j := range jobs {
		if j.ID == input {
			return j, nil
		}
	}

	var matches []*domain.Job
	for _, j := range jobs {
		if strings.HasPrefix(j.ID, input) {
			matches = append(matches, j)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("job not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("job %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTask turns user input into a task within the given job: exact name
// match (case-insensitive), exact ID match, then unambiguous ID prefix.
func resolveTask(ctx context.Context, app *App, jobID, input string) (*domain.Task, error) {
	if input == "" {
		return nil, fmt.Errorf("task is required")
	}

	tasks, err := app.Catalog.ListTasks(ctx, jobID)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if strings.EqualFold(t.Name, input) {
			return t, nil
		}
	}
	for _, t := range tasks {
		if t.ID == input {
			return t, nil
		}
	}

	var matches []*domain.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("task %q is ambiguous (%d matches)", input, len(matches))
	}
}
