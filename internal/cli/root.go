package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rbandrews2/crewclock/internal/service"
)

// App holds the service interfaces and ambient identity the CLI commands
// run against.
type App struct {
	Clock      service.ClockService
	Catalog    service.CatalogService
	Timesheets service.TimesheetService

	// UserID and Email identify whose clock this process drives.
	UserID string
	Email  string

	// ExportDir is where export files land.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal; forms and the
	// watch view refuse to start when it is not.
	IsInteractive func() bool

	// Now is the clock the CLI renders with; tests pin it.
	Now func() time.Time

	// Loc is the timezone report dates are evaluated in.
	Loc *time.Location
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) location() *time.Location {
	if app.Loc != nil {
		return app.Loc
	}
	return time.Local
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "crewclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "crewclock",
		Short:         "Field crew time and pay tracking",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newClockCmd(app),
		newJobCmd(app),
		newTaskCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
