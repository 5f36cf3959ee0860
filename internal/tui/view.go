package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"concierge/internal/tui/styles"
)

// View renders the full screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  starting..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Travel Concierge"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("AI-powered itinerary & hotel recommendations. Refine naturally."))
	b.WriteString("\n\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")

	if m.notification != "" {
		b.WriteString(styles.Notification.Render(m.notification))
		b.WriteString("\n")
	} else if m.info != "" {
		b.WriteString(styles.Secondary.Render(m.info))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	leftWidth := m.width * 3 / 5
	if leftWidth < 40 {
		leftWidth = 40
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	left := m.renderItinerary(leftWidth)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHotels(rightWidth),
		m.renderSummary(rightWidth),
		m.renderRefine(rightWidth),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	b.WriteString(m.renderHistory(leftWidth + rightWidth + 1))
	b.WriteString("\n")

	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderControls() string {
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		m.inputs[focusUserID].View(), "  ",
		m.inputs[focusDestination].View(), "  ",
		m.inputs[focusBudget].View(), "  ",
	)
	if m.state.Loading() {
		return row + m.spin.View() + styles.Muted.Render(" working...")
	}
	return row + styles.Primary.Render("[enter] plan trip")
}

func (m Model) renderRefine(width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Refine"))
	b.WriteString("\n")
	b.WriteString(m.inputs[focusRefine].View())
	b.WriteString("\n")
	if m.state.Loading() {
		b.WriteString(styles.Muted.Render("waiting for the planner..."))
	} else {
		b.WriteString(styles.Muted.Render("press enter to send"))
	}
	return styles.Sidebar.Width(width).Render(b.String())
}

func (m Model) renderHelp() string {
	keys := []string{
		styles.HelpKey.Render("tab") + " next field",
		styles.HelpKey.Render("enter") + " plan / refine",
		styles.HelpKey.Render("ctrl+c") + " quit",
	}
	help := strings.Join(keys, styles.Muted.Render("  •  "))
	footer := styles.Muted.Render("Agent demo. Do not auto-book without confirmation.")
	return styles.HelpBar.Render(help) + "\n" + footer
}
