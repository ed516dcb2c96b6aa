package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
)

type clockInPick struct {
	jobID  string
	taskID string
}

// runClockInForm walks the user through job, then task, then an optional
// note. The task list is fetched only after a job is chosen, so it always
// shows that job's tasks.
func runClockInForm(ctx context.Context, app *App, note *string) (clockInPick, error) {
	var pick clockInPick

	jobs, err := app.Catalog.ListJobs(ctx)
	if err != nil {
		return pick, err
	}
	if len(jobs) == 0 {
		return pick, fmt.Errorf("no active jobs; ask an admin to add one")
	}

	jobOptions := make([]huh.Option[string], 0, len(jobs))
	for _, j := range jobs {
		jobOptions = append(jobOptions, huh.NewOption(j.Label(), j.ID))
	}

	jobForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which job?").
				Options(jobOptions...).
				Value(&pick.jobID),
		),
	).WithTheme(crewHuhTheme()).WithShowHelp(false)
	if err := jobForm.Run(); err != nil {
		return pick, err
	}

	tasks, err := app.Catalog.ListTasks(ctx, pick.jobID)
	if err != nil {
		return pick, err
	}
	if len(tasks) == 0 {
		return pick, fmt.Errorf("job has no active tasks")
	}

	taskOptions := make([]huh.Option[string], 0, len(tasks))
	for _, t := range tasks {
		label := fmt.Sprintf("%s (%s)", t.Name, formatter.Rate(t.PayRate))
		taskOptions = append(taskOptions, huh.NewOption(label, t.ID))
	}

	taskForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which task?").
				Options(taskOptions...).
				Value(&pick.taskID),
			huh.NewInput().
				Title("Note (optional)").
				Placeholder("poured footings").
				Value(note),
		),
	).WithTheme(crewHuhTheme()).WithShowHelp(false)
	if err := taskForm.Run(); err != nil {
		return pick, err
	}

	return pick, nil
}

func crewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
