package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"concierge/internal/errors"
	"concierge/internal/session"
)

// Init starts the spinner ticker.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. All session mutation driven by the network
// happens inside the controller; the model only reads state and reacts to
// planResultMsg when a request resolves.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case planResultMsg:
		if msg.err != nil {
			m.notification = errors.UserMessage(msg.err)
			m.info = ""
			return m, nil
		}
		m.notification = ""
		switch msg.kind {
		case session.KindRefine:
			m.inputs[focusRefine].SetValue("")
			m.info = "plan refined"
		default:
			m.info = "plan ready"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}

	return m, nil
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil

	case "enter":
		if m.focus == focusRefine {
			return m, m.dispatchRefine()
		}
		return m, m.dispatchCreate()
	}

	// Fields stay editable while a request is in flight; only the
	// dispatch paths are gated on Loading. Create snapshots the field
	// values into the session at dispatch, so later edits cannot bleed
	// into the request being served.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// dispatchCreate validates the trip fields, commits them to the session and
// launches the planning request.
func (m *Model) dispatchCreate() tea.Cmd {
	if m.state.Loading() {
		return nil
	}
	budget, ok := m.budgetValue()
	if !ok {
		m.notification = "budget must be a number"
		return nil
	}
	m.state.SetInputs(m.inputs[focusUserID].Value(), m.inputs[focusDestination].Value(), budget)
	m.notification = ""
	m.info = ""
	return tea.Batch(m.spin.Tick, createPlan(m.ctx, m.controller))
}

// dispatchRefine commits the draft message and launches the refinement
// request. Precondition failures surface through the controller.
func (m *Model) dispatchRefine() tea.Cmd {
	if m.state.Loading() {
		return nil
	}
	m.state.SetRefineDraft(m.inputs[focusRefine].Value())
	m.notification = ""
	m.info = ""
	return tea.Batch(m.spin.Tick, refinePlan(m.ctx, m.controller))
}
