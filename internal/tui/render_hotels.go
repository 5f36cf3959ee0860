package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"concierge/internal/plan"
	"concierge/internal/tui/styles"
	"concierge/internal/util"
)

// renderHotels draws the hotel recommendations panel.
func (m Model) renderHotels(width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Hotels"))
	b.WriteString("\n")

	p := m.state.Plan()
	if p == nil || len(p.Hotels) == 0 {
		b.WriteString(styles.Muted.Render("No hotels yet."))
		return styles.Sidebar.Width(width).Render(b.String())
	}

	cards := lo.Map(p.Hotels, func(h plan.Hotel, _ int) string {
		return m.renderHotel(h, width-4)
	})
	b.WriteString(strings.Join(cards, "\n"))

	return styles.Sidebar.Width(width).Render(b.String())
}

func (m Model) renderHotel(h plan.Hotel, width int) string {
	var b strings.Builder
	b.WriteString(styles.ItemTitle.Render(h.Name))
	if h.Rating != nil {
		b.WriteString(" ")
		b.WriteString(styles.Warning.Render(fmt.Sprintf("★ %.1f", *h.Rating)))
	}
	b.WriteString("\n")
	b.WriteString(styles.PriceBadge.Render(m.currency + formatAmount(h.PricePerNight) + "/night"))
	if h.Link != "" {
		b.WriteString("\n")
		b.WriteString(styles.Link.Render(util.TruncateString(h.Link, width)))
	}
	b.WriteString("\n")
	return b.String()
}

// formatAmount prints a money amount without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
