package tui

import (
	"fmt"
	"strings"

	"concierge/internal/tui/styles"
)

const confidenceBarWidth = 20

// renderSummary draws the total cost and the planner confidence gauge.
func (m Model) renderSummary(width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Summary"))
	b.WriteString("\n")

	p := m.state.Plan()
	if p == nil {
		b.WriteString(styles.Muted.Render("No plan yet."))
		return styles.Sidebar.Width(width).Render(b.String())
	}

	b.WriteString(styles.Text.Render("Total: "))
	b.WriteString(styles.Secondary.Render(m.currency + formatAmount(p.Total())))
	b.WriteString("\n")

	pct := p.ConfidencePercent()
	b.WriteString(styles.Text.Render("Confidence: "))
	b.WriteString(confidenceBar(pct))
	b.WriteString(fmt.Sprintf(" %d%%", pct))

	return styles.Sidebar.Width(width).Render(b.String())
}

// confidenceBar renders a fixed-width gauge filled in proportion to pct.
func confidenceBar(pct int) string {
	filled := pct * confidenceBarWidth / 100
	if filled > confidenceBarWidth {
		filled = confidenceBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return styles.ConfidenceFill.Render(strings.Repeat("█", filled)) +
		styles.ConfidenceTrack.Render(strings.Repeat("░", confidenceBarWidth-filled))
}
