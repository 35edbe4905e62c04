package internal

import (
	"fmt"
	"strings"

	"pomodoro_tui/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	lengthStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	timerDisplayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69")).
				Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

func (m *Model) mainView() string {
	d := m.Engine.Display()

	var sb strings.Builder
	sb.WriteString(titleStyle.Width(40).Render("Pomodoro"))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lengthView("Break", d.RestMinutes, d.Active, "←", "→"),
		"  ",
		lengthView("Session", d.SessionMinutes, d.Active, "↓", "↑"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(clockView(d))
	sb.WriteString("\n\n")
	sb.WriteString(controlsView(d))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Session: ↑/↓ | Break: ←/→ | Start/Stop: Enter | Reset: r | Quit: q"))
	if m.Err != nil {
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render(fmt.Sprintf("Alert: %v", m.Err)))
	}

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String()),
	)
}

// lengthView renders a length control. Arrows dim once the lengths lock.
func lengthView(label string, minutes int, locked bool, dec, inc string) string {
	arrow := labelStyle
	if locked {
		arrow = inactiveStyle
	}
	body := fmt.Sprintf("%s\n\n%s%s%s",
		labelStyle.Render(label),
		arrow.Render(dec),
		lengthStyle.Render(fmt.Sprintf("%d", minutes)),
		arrow.Render(inc),
	)
	return boxStyle.Width(17).Render(body)
}

func clockView(d timer.Display) string {
	style := timerDisplayStyle
	if d.Running {
		style = timerRunningStyle
	}
	body := fmt.Sprintf("%s\n\n%s", labelStyle.Render(d.Label), style.Render(d.TimeLeft))
	return boxStyle.Width(38).Render(body)
}

func controlsView(d timer.Display) string {
	label := "Start"
	if d.Running {
		label = "Stop"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(label),
		"  ",
		buttonStyle.Render("Reset"),
	)
}
