package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"concierge/internal/controller"
	"concierge/internal/plan"
	"concierge/internal/session"
)

// planResultMsg carries the outcome of a create or refine request back into
// the event loop. Exactly one of plan and err is meaningful.
type planResultMsg struct {
	kind session.Kind
	plan *plan.Plan
	err  error
}

// createPlan runs the initial planning request off the event loop.
func createPlan(ctx context.Context, ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		p, err := ctrl.CreatePlan(ctx)
		return planResultMsg{kind: session.KindPlan, plan: p, err: err}
	}
}

// refinePlan runs a refinement request off the event loop.
func refinePlan(ctx context.Context, ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		p, err := ctrl.RefinePlan(ctx)
		return planResultMsg{kind: session.KindRefine, plan: p, err: err}
	}
}
