package tui

import (
	"fmt"
	"strings"

	"concierge/internal/session"
	"concierge/internal/tui/styles"
	"concierge/internal/util"
)

// renderHistory draws the activity log, newest entry first.
func (m Model) renderHistory(width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("History"))
	b.WriteString("\n")

	entries := m.state.History()
	if len(entries) == 0 {
		b.WriteString(styles.Muted.Render("No activity yet."))
		return styles.ContentBox.Width(width).Render(b.String())
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, util.TruncateANSI(historyLine(e), width-4))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return styles.ContentBox.Width(width).Render(b.String())
}

func historyLine(e session.Entry) string {
	line := styles.Header.Render(string(e.Kind)) +
		styles.Muted.Render(" @ "+e.Timestamp.Format("3:04:05 PM"))
	if e.Message != "" {
		line += styles.Text.Render(fmt.Sprintf(": %q", e.Message))
	}
	return line
}
