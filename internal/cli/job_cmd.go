package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
)

func newJobCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage the job catalog",
	}

	cmd.AddCommand(
		newJobAddCmd(app),
		newJobListCmd(app),
		newJobDeactivateCmd(app),
	)

	return cmd
}

func newJobAddCmd(app *App) *cobra.Command {
	var name, code string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new job (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := app.Catalog.CreateJob(context.Background(), name, code)
			if err != nil {
				return err
			}

			fmt.Printf("Created job %s\n", formatter.Bold(job.Label()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Job name")
	cmd.Flags().StringVar(&code, "code", "", "Short job code shown in labels, e.g. JOB-104")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newJobListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.Catalog.ListJobs(context.Background())
			if err != nil {
				return err
			}

			if len(jobs) == 0 {
				fmt.Println(formatter.Dim("No active jobs."))
				return nil
			}

			rows := make([][]string, 0, len(jobs))
			for _, j := range jobs {
				code := j.Code
				if code == "" {
					code = "—"
				}
				rows = append(rows, []string{
					formatter.TruncID(j.ID),
					j.Name,
					code,
					formatter.ActivePill(j.Active),
				})
			}

			fmt.Print(formatter.RenderTable([]string{"ID", "Name", "Code", "Status"}, rows))
			return nil
		},
	}
}

func newJobDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <job>",
		Short: "Retire a job from the catalog (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			job, err := resolveJob(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeactivateJob(ctx, job.ID); err != nil {
				return err
			}

			fmt.Printf("Deactivated job %s. Past entries keep its label.\n", formatter.Bold(job.Label()))
			return nil
		},
	}
}
