package tui

import (
	"strings"

	"concierge/internal/plan"
	"concierge/internal/tui/styles"
)

var daySeparators = strings.NewReplacer("_", " ", "-", " ")

// dayTitle turns a wire day key like "day_1" into a display heading
// like "DAY 1".
func dayTitle(key string) string {
	return strings.ToUpper(daySeparators.Replace(key))
}

// renderItinerary draws the day-by-day panel in the order the planner
// returned the days and slots.
func (m Model) renderItinerary(width int) string {
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Itinerary"))
	b.WriteString("\n")

	p := m.state.Plan()
	if p == nil {
		b.WriteString(styles.Muted.Render("No plan yet. Fill in the trip details and press enter."))
		return styles.ContentBox.Width(width).Render(b.String())
	}

	for di, day := range p.Itinerary {
		if di > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.DayHeader.Render(dayTitle(day.Key)))
		b.WriteString("\n")
		for _, slot := range day.Slots {
			b.WriteString(renderSlot(slot))
		}
	}

	return styles.ContentBox.Width(width).Render(b.String())
}

func renderSlot(slot plan.Slot) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(styles.SlotName.Render(slot.Name))
	b.WriteString("\n")
	if !slot.Item.Planned() {
		b.WriteString("    ")
		b.WriteString(styles.Muted.Render("No plan"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("    ")
	b.WriteString(styles.ItemTitle.Render(slot.Item.Name))
	b.WriteString("\n")
	b.WriteString("    ")
	// Missing sub-fields render as empty, separator always present.
	b.WriteString(styles.Muted.Render(slot.Item.Desc + " • " + slot.Item.Time))
	b.WriteString("\n")
	return b.String()
}
