package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"concierge/internal/controller"
	"concierge/internal/session"
	"concierge/internal/tui/styles"
)

// Focus order for the input fields. The refine field is last so tabbing
// walks the trip inputs before the refinement box.
const (
	focusUserID = iota
	focusDestination
	focusBudget
	focusRefine
	focusCount
)

// Model holds the TUI application state
type Model struct {
	// Core components
	ctx        context.Context
	state      *session.State
	controller *controller.Controller
	currency   string

	// UI state
	inputs   []textinput.Model
	spin     spinner.Model
	focus    int
	width    int
	height   int
	ready    bool
	quitting bool

	// One-line notices below the controls. notification is the error
	// channel required by the controller contract; info confirms success.
	notification string
	info         string
}

// NewModel creates a new TUI model bound to one session. The context is the
// session context; network commands derive from it so quitting the program
// aborts an in-flight request.
func NewModel(ctx context.Context, state *session.State, ctrl *controller.Controller, currency string) Model {
	userID, destination, budget := state.Inputs()

	inputs := make([]textinput.Model, focusCount)

	ti := textinput.New()
	ti.Placeholder = "User ID"
	ti.SetValue(userID)
	ti.CharLimit = 64
	ti.Width = 16
	ti.Focus()
	inputs[focusUserID] = ti

	ti = textinput.New()
	ti.Placeholder = "Destination"
	ti.SetValue(destination)
	ti.CharLimit = 64
	ti.Width = 20
	inputs[focusDestination] = ti

	ti = textinput.New()
	ti.Placeholder = "Budget"
	if budget > 0 {
		ti.SetValue(strconv.FormatFloat(budget, 'f', -1, 64))
	}
	ti.CharLimit = 12
	ti.Width = 10
	inputs[focusBudget] = ti

	ti = textinput.New()
	ti.Placeholder = "e.g. make it cheaper / add a museum"
	ti.SetValue(state.RefineDraft())
	ti.CharLimit = 200
	ti.Width = 34
	inputs[focusRefine] = ti

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.PrimaryColor)

	return Model{
		ctx:        ctx,
		state:      state,
		controller: ctrl,
		currency:   currency,
		inputs:     inputs,
		spin:       sp,
	}
}

// setFocus moves keyboard focus to the given field.
func (m *Model) setFocus(focus int) {
	m.focus = ((focus % focusCount) + focusCount) % focusCount
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// budgetValue parses the budget field. A blank field reads as zero.
func (m Model) budgetValue() (float64, bool) {
	raw := m.inputs[focusBudget].Value()
	if raw == "" {
		return 0, true
	}
	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil || budget < 0 {
		return 0, false
	}
	return budget, true
}
