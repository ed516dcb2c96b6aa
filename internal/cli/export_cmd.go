package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/report"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered timesheet to a file",
	}

	cmd.AddCommand(
		newExportCSVCmd(app),
		newExportPDFCmd(app),
	)

	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var flags reportFlags
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the timesheet as a spreadsheet-friendly CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			res, meta, err := flags.runFilter(ctx, app)
			if err != nil {
				return err
			}

			path, err := exportPath(app, out, report.CSVFilename(app.now()))
			if err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := report.WriteCSV(f, res, meta); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing export file: %w", err)
			}

			fmt.Printf("Wrote %d entries to %s\n", len(res.Entries), path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default export_dir/timesheet-<date>.csv)")

	return cmd
}

func newExportPDFCmd(app *App) *cobra.Command {
	var flags reportFlags
	var out string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write the timesheet as a printable PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			res, meta, err := flags.runFilter(ctx, app)
			if err != nil {
				return err
			}

			path, err := exportPath(app, out, report.PDFFilename(app.now()))
			if err != nil {
				return err
			}

			if err := report.WritePDF(path, res, meta); err != nil {
				return err
			}

			fmt.Printf("Wrote %d entries to %s\n", len(res.Entries), path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default export_dir/timesheet-<date>.pdf)")

	return cmd
}

// exportPath picks the output path, creating the export directory when the
// default location is used.
func exportPath(app *App, out, defaultName string) (string, error) {
	if out != "" {
		return out, nil
	}

	dir := app.ExportDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return filepath.Join(dir, defaultName), nil
}
