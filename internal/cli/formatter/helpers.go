package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rbandrews2/crewclock/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ClockStatePill returns a colored indicator for the clock state.
func ClockStatePill(state domain.ClockState) string {
	if state == domain.StateOnClock {
		return StyleGreen.Render("● ON THE CLOCK")
	}
	return StyleDim.Render("○ OFF THE CLOCK")
}

// ActivePill returns a colored active/inactive indicator for catalog rows.
func ActivePill(active bool) string {
	if active {
		return StyleGreen.Render("● Active")
	}
	return StyleDim.Render("✖ Inactive")
}

// Money renders a dollar amount as $X.XX.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Rate renders a pay rate as $X.XX/hr.
func Rate(amount float64) string {
	return fmt.Sprintf("$%.2f/hr", amount)
}

// Elapsed renders a duration as "4h 32m 10s", dropping leading zero parts.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ClockRange renders an entry's in/out times as "08:00 – 12:30", with an
// arrow placeholder while the entry is open.
func ClockRange(e *domain.TimeEntry, loc *time.Location) string {
	in := e.ClockIn.In(loc).Format("15:04")
	if e.ClockOut == nil {
		return in + " – ..."
	}
	return in + " – " + e.ClockOut.In(loc).Format("15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
