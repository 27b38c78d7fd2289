package cookmode

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkhoury/cookmode/internal/domain"
)

// View implements tea.Model. The dialog is centred in the window and
// framed, modal style; everything behind it is blank because cooking
// mode owns the whole alt screen.
func (m *Model) View() string {
	if m.closed {
		return ""
	}

	var body string
	switch {
	case m.phase == domain.Completed:
		body = m.viewDone()
	case m.seq.Len() == 0:
		body = m.viewEmpty()
	case m.menuOpen:
		body = m.viewMenu()
	default:
		body = m.viewStep()
	}

	frame := frameStyle.Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

// contentWidth is the inner text width of the dialog.
func (m *Model) contentWidth() int {
	w := 60
	if m.width > 0 && m.width-14 < w {
		w = m.width - 14
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) viewStep() string {
	cur, ok := m.seq.Current()
	if !ok {
		return m.viewEmpty()
	}
	w := m.contentWidth()

	meta := fmt.Sprintf("Step %d of %d", m.seq.Index()+1, m.seq.Len())
	if cur.Duration > 0 {
		meta += "  " + durationStyle.Render("~"+fmtDuration(cur.Duration))
	}

	frac := float64(m.seq.Index()+1) / float64(m.seq.Len())

	// The slide offset decays to zero as the transition settles. The
	// direction hint only affects presentation.
	step := stepStyle.Width(w).Render(cur.Text)
	if m.slide > 0 {
		indent := m.slide * 2
		marker := "‹"
		if m.seq.Direction() == domain.Forward {
			marker = "›"
		}
		step = lipgloss.NewStyle().MarginLeft(indent).Render(step)
		meta += "  " + metaStyle.Render(marker)
	}

	parts := []string{
		titleStyle.Render(m.title),
		metaStyle.Render(meta),
		m.prog.ViewAs(frac),
		"",
		step,
		"",
		m.renderControls(),
		m.help.View(m.keys),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewMenu() string {
	w := m.contentWidth()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteByte('\n')
	b.WriteString(menuTitleStyle.Render("Jump to step"))
	b.WriteString("\n\n")

	for i := 0; i < m.seq.Len(); i++ {
		in := m.stepAt(i)
		cursor := "  "
		if i == m.menuIndex {
			cursor = menuCursorStyle.Render("▸ ")
		}
		line := fmt.Sprintf("%2d. %s", i+1, truncate(in.Text, w-8))
		style := menuItemStyle
		if i == m.seq.Index() {
			style = menuCurrentStyle
		}
		b.WriteString(cursor + style.Render(line))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(metaStyle.Render("enter jump · s dismiss · esc close"))
	return b.String()
}

func (m *Model) viewDone() string {
	parts := []string{
		doneHeadingStyle.Render("Nice work!"),
		"",
		stepStyle.Render("You finished " + m.title + "."),
		"",
		m.renderControls(),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) viewEmpty() string {
	parts := []string{
		titleStyle.Render(m.title),
		"",
		emptyStyle.Render("This recipe has no steps yet."),
		"",
		m.renderControls(),
	}
	return strings.Join(parts, "\n")
}

// renderControls draws the footer focus ring.
func (m *Model) renderControls() string {
	var parts []string
	for _, c := range m.controls() {
		label := "[ " + c.label + " ]"
		switch {
		case c.disabled:
			parts = append(parts, disabledControlStyle.Render(label))
		case c.id == m.focus:
			parts = append(parts, focusedControlStyle.Render(label))
		default:
			parts = append(parts, controlStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// stepAt returns the instruction at index i for menu rendering.
func (m *Model) stepAt(i int) domain.Instruction {
	steps := m.seq.Steps()
	if i < 0 || i >= len(steps) {
		return domain.Instruction{}
	}
	return steps[i]
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

// truncate shortens s to at most maxLen runes. Counting runes rather
// than bytes keeps the cut from landing inside a multi-byte character;
// display width of wide glyphs is not accounted for.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen < 4 || len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
