package cookmode

import "github.com/charmbracelet/lipgloss"

// ── Styles (soft palette) ────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Step counter, durations, hints.
	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// The instruction text itself.
	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Padding(0, 2)

	focusedControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#27272a")).
				Background(lipgloss.Color("#bae6fd")).
				Padding(0, 2)

	disabledControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#52525b")).
				Padding(0, 2)

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	menuCurrentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0"))

	doneHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0")).
				Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 3)
)
