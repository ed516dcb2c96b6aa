package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
	"github.com/rbandrews2/crewclock/internal/report"
)

type reportFlags struct {
	job   string
	start string
	end   string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.job, "job", report.JobAll, "Limit to one job (code or ID), or \"all\"")
	cmd.Flags().StringVar(&f.start, "start", "", "First date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "Last date to include (YYYY-MM-DD)")
}

// resolve parses the date flags and resolves the job filter to an ID.
func (f *reportFlags) resolve(ctx context.Context, app *App) (string, *time.Time, *time.Time, error) {
	jobID := report.JobAll
	if f.job != "" && f.job != report.JobAll {
		job, err := resolveJob(ctx, app, f.job)
		if err != nil {
			return "", nil, nil, err
		}
		jobID = job.ID
	}

	parse := func(value, name string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		t, err := time.ParseInLocation("2006-01-02", value, app.location())
		if err != nil {
			return nil, fmt.Errorf("invalid %s date %q: %w", name, value, err)
		}
		return &t, nil
	}

	start, err := parse(f.start, "start")
	if err != nil {
		return "", nil, nil, err
	}
	end, err := parse(f.end, "end")
	if err != nil {
		return "", nil, nil, err
	}

	return jobID, start, end, nil
}

// runFilter reads the user's recent entries and applies the report filter.
func (f *reportFlags) runFilter(ctx context.Context, app *App) (report.Result, report.Meta, error) {
	jobID, start, end, err := f.resolve(ctx, app)
	if err != nil {
		return report.Result{}, report.Meta{}, err
	}

	entries, _, err := app.Timesheets.Recent(ctx, app.UserID)
	if err != nil {
		return report.Result{}, report.Meta{}, err
	}

	res := report.Apply(entries, jobID, start, end, app.location())
	meta := report.Meta{Email: app.Email, Start: start, End: end, Loc: app.location()}
	return res, meta, nil
}

func newReportCmd(app *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show recent entries with hour and pay totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			res, meta, err := flags.runFilter(ctx, app)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Timesheet " + meta.RangeLabel()))
			if len(res.Entries) == 0 {
				fmt.Println(formatter.Dim("No entries in range."))
				return nil
			}

			rows := make([][]string, 0, len(res.Entries))
			for _, e := range res.Entries {
				note := e.Note
				if note == "" {
					note = formatter.Dim("—")
				}
				rows = append(rows, []string{
					meta.EntryDate(e),
					report.JobTaskLabel(e),
					formatter.ClockRange(e, app.location()),
					report.FormatEntryHours(e),
					report.FormatEntryPay(e),
					note,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"Date", "Job / Task", "Clock", "Hours", "Pay", "Note"}, rows))

			totals := fmt.Sprintf("%s hours    %s estimated gross",
				formatter.Bold(fmt.Sprintf("%.2f", res.TotalHours)),
				formatter.StyleGreen.Render(formatter.Money(res.TotalGross)),
			)
			fmt.Println("\n" + totals)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
