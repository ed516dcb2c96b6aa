package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rbandrews2/crewclock/internal/cli/formatter"
	"github.com/rbandrews2/crewclock/internal/domain"
)

// refreshEvery is how many ticks pass between store re-reads; the elapsed
// timer itself advances every tick.
const refreshEvery = 15

type watchTickMsg time.Time

type watchStatusMsg struct {
	entry *domain.TimeEntry
	err   error
}

type watchKeymap struct {
	quit key.Binding
}

// watchModel keeps the clock status on screen with a live elapsed timer.
type watchModel struct {
	app   *App
	entry *domain.TimeEntry
	err   error
	ticks int
	keys  watchKeymap
}

func newWatchModel(app *App) watchModel {
	return watchModel{
		app: app,
		keys: watchKeymap{
			quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.fetchStatus, watchTick())
}

func (m watchModel) fetchStatus() tea.Msg {
	entry, err := m.app.Clock.Status(context.Background(), m.app.UserID)
	return watchStatusMsg{entry: entry, err: err}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}

	case watchStatusMsg:
		m.entry = msg.entry
		m.err = msg.err

	case watchTickMsg:
		m.ticks++
		if m.ticks%refreshEvery == 0 {
			return m, tea.Batch(m.fetchStatus, watchTick())
		}
		return m, watchTick()
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n" + m.helpLine()
	}

	if m.entry == nil {
		content := formatter.ClockStatePill(domain.StateOffClock)
		return formatter.RenderBox("Status", content) + "\n" + m.helpLine()
	}

	elapsed := m.app.now().Sub(m.entry.ClockIn)
	running := domain.GrossPay(domain.DurationSeconds(m.entry.ClockIn, m.app.now()), m.entry.PayRateAtTime)
	content := fmt.Sprintf("%s\n\n%s  %s\n%s  %s\n%s",
		formatter.ClockStatePill(domain.StateOnClock),
		formatter.Bold(m.entry.JobLabelAtTime), formatter.Dim(m.entry.TaskLabelAtTime),
		formatter.Bold(formatter.Elapsed(elapsed)),
		formatter.StyleGreen.Render("≈ "+formatter.Money(running)),
		formatter.Dim("since "+m.entry.ClockIn.In(m.app.location()).Format("15:04")),
	)
	return formatter.RenderBox("Status", content) + "\n" + m.helpLine()
}

func (m watchModel) helpLine() string {
	return formatter.Dim("  q quit")
}
