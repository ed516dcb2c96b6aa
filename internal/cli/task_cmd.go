package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task catalog",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDeactivateCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var jobInput, name string
	var rate float64
	var sortOrder int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task under a job (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			job, err := resolveJob(ctx, app, jobInput)
			if err != nil {
				return err
			}

			task, err := app.Catalog.CreateTask(ctx, job.ID, name, rate, sortOrder)
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s at %s under %s\n",
				formatter.Bold(task.Name), formatter.Rate(task.PayRate), job.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&jobInput, "job", "", "Job code or ID the task belongs to")
	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly pay rate in dollars")
	cmd.Flags().IntVar(&sortOrder, "sort", 0, "Position in pick lists (lower first)")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var jobInput string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a job's active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			job, err := resolveJob(ctx, app, jobInput)
			if err != nil {
				return err
			}

			tasks, err := app.Catalog.ListTasks(ctx, job.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(job.Label()))
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No active tasks."))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Name,
					formatter.Rate(t.PayRate),
					fmt.Sprintf("%d", t.SortOrder),
					formatter.ActivePill(t.Active),
				})
			}

			fmt.Print(formatter.RenderTable([]string{"ID", "Name", "Rate", "Sort", "Status"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobInput, "job", "", "Job code or ID")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func newTaskDeactivateCmd(app *App) *cobra.Command {
	var jobInput string

	cmd := &cobra.Command{
		Use:   "deactivate <task>",
		Short: "Retire a task from the catalog (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			job, err := resolveJob(ctx, app, jobInput)
			if err != nil {
				return err
			}
			task, err := resolveTask(ctx, app, job.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeactivateTask(ctx, task.ID); err != nil {
				return err
			}

			fmt.Printf("Deactivated task %s. Open and past entries keep its rate and label.\n",
				formatter.Bold(task.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&jobInput, "job", "", "Job code or ID the task belongs to")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}
