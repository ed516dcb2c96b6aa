package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
	"github.com/rbandrews2/crewclock/internal/domain"
)

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Clock in, clock out, and check your status",
	}

	cmd.AddCommand(
		newClockInCmd(app),
		newClockOutCmd(app),
		newClockStatusCmd(app),
	)

	return cmd
}

func newClockInCmd(app *App) *cobra.Command {
	var jobInput, taskInput, note string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "in",
		Short: "Clock in on a job and task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive || (jobInput == "" && taskInput == "") {
				if !app.interactive() {
					if jobInput == "" {
						return fmt.Errorf("no terminal attached; pass --job and --task")
					}
				} else {
					picked, err := runClockInForm(ctx, app, &note)
					if err != nil {
						return err
					}
					jobInput, taskInput = picked.jobID, picked.taskID
				}
			}

			job, err := resolveJob(ctx, app, jobInput)
			if err != nil {
				return err
			}
			task, err := resolveTask(ctx, app, job.ID, taskInput)
			if err != nil {
				return err
			}

			entry, err := app.Clock.ClockIn(ctx, app.UserID, job.ID, task.ID, note)
			if err != nil {
				return err
			}

			fmt.Println(renderClockedIn(app, entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobInput, "job", "", "Job code or ID")
	cmd.Flags().StringVar(&taskInput, "task", "", "Task name or ID")
	cmd.Flags().StringVar(&note, "note", "", "Optional note for this entry")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the job and task from a menu")

	return cmd
}

func newClockOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "out",
		Short: "Clock out of the open entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Clock.ClockOut(context.Background(), app.UserID)
			if err != nil {
				return err
			}

			fmt.Println(renderClockedOut(app, entry))
			return nil
		},
	}
}

func newClockStatusCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether you are on the clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if watch {
				if !app.interactive() {
					return fmt.Errorf("no terminal attached; --watch needs one")
				}
				p := tea.NewProgram(newWatchModel(app))
				_, err := p.Run()
				return err
			}

			entry, err := app.Clock.Status(ctx, app.UserID)
			if err != nil {
				return err
			}

			fmt.Println(renderStatus(app, entry))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep the status on screen with a live elapsed timer")

	return cmd
}

func renderClockedIn(app *App, e *domain.TimeEntry) string {
	loc := app.location()
	content := fmt.Sprintf("%s\n\n%s  %s\n%s at %s",
		formatter.ClockStatePill(domain.StateOnClock),
		formatter.Bold(e.JobLabelAtTime), formatter.Dim(e.TaskLabelAtTime),
		formatter.Rate(e.PayRateAtTime),
		e.ClockIn.In(loc).Format("15:04"),
	)
	if e.Note != "" {
		content += "\n" + formatter.Dim("Note: "+e.Note)
	}
	return formatter.RenderBox("Clocked in", content)
}

func renderClockedOut(app *App, e *domain.TimeEntry) string {
	content := fmt.Sprintf("%s\n\n%s  %s\n%s worked, %s earned",
		formatter.ClockStatePill(domain.StateOffClock),
		formatter.Bold(e.JobLabelAtTime), formatter.Dim(e.TaskLabelAtTime),
		formatter.Bold(fmt.Sprintf("%.2fh", e.Hours())),
		formatter.StyleGreen.Render(formatter.Money(payOrZero(e))),
	)
	content += "\n" + formatter.Dim(formatter.ClockRange(e, app.location()))
	return formatter.RenderBox("Clocked out", content)
}

func renderStatus(app *App, e *domain.TimeEntry) string {
	if e == nil {
		return formatter.ClockStatePill(domain.StateOffClock)
	}

	elapsed := app.now().Sub(e.ClockIn)
	return fmt.Sprintf("%s\n%s  %s\n%s elapsed since %s",
		formatter.ClockStatePill(domain.StateOnClock),
		formatter.Bold(e.JobLabelAtTime), formatter.Dim(e.TaskLabelAtTime),
		formatter.Bold(formatter.Elapsed(elapsed)),
		formatter.Dim(e.ClockIn.In(app.location()).Format("15:04")),
	)
}

func payOrZero(e *domain.TimeEntry) float64 {
	if e.GrossPay == nil {
		return 0
	}
	return *e.GrossPay
}
