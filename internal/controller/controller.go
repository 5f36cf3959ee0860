// Package controller sequences requests to the planning service and applies
// their results to the session state. It enforces the single-flight rule: at
// most one create/refine request is outstanding at any time.
package controller

import (
	"context"
	"strings"
	"sync/atomic"

	"concierge/internal/config"
	"concierge/internal/errors"
	"concierge/internal/logging"
	"concierge/internal/plan"
	"concierge/internal/planning"
	"concierge/internal/session"
)

// Controller drives create/refine requests for one session. All state
// mutation funnels through here: on success the plan is replaced and a
// history entry appended as one atomic step, on failure the state is left
// untouched, and the loading flag is cleared on every exit path.
type Controller struct {
	state  *session.State
	client planning.Service
	trip   config.TripConfig
	logger *logging.Logger

	// inflight is the single-flight guard. The loading flag on the state
	// mirrors it for rendering, but this compare-and-set is what actually
	// holds the invariant, even if a caller bypasses the disabled controls.
	inflight atomic.Bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller bound to one session's state. The trip config
// supplies the request fields that are not sourced from user input.
func New(state *session.State, client planning.Service, trip config.TripConfig, opts ...Option) *Controller {
	c := &Controller{
		state:  state,
		client: client,
		trip:   trip,
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.WithSession(state.ID())
	return c
}

// InFlight reports whether a request is currently outstanding.
func (c *Controller) InFlight() bool {
	return c.inflight.Load()
}

// CreatePlan requests a fresh plan from the user's current inputs. On
// success the session's plan is replaced with the response and a "plan"
// history entry is recorded.
func (c *Controller) CreatePlan(ctx context.Context) (*plan.Plan, error) {
	release, err := c.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	userID, destination, budget := c.state.Inputs()
	req := planning.PlanRequest{
		UserID:      userID,
		Origin:      c.trip.Origin,
		Destination: destination,
		StartDate:   c.trip.StartDate,
		EndDate:     c.trip.EndDate,
		Budget:      budget,
		Travelers:   c.trip.Travelers,
	}

	c.logger.Info("creating plan", "destination", destination, "budget", budget)

	p, err := c.client.CreatePlan(ctx, req)
	if err != nil {
		c.logger.Warn("create plan failed", "error", err)
		return nil, err
	}

	c.state.RecordPlan(p)
	c.logger.Info("plan created",
		"days", len(p.Itinerary), "hotels", len(p.Hotels), "total", p.Total())
	return p, nil
}

// RefinePlan sends the pending refinement draft for the current plan. It
// fails locally, without touching the network or the state, when no plan
// exists or the draft is blank. On success the plan is replaced, a "refine"
// entry recorded, and the draft cleared.
func (c *Controller) RefinePlan(ctx context.Context) (*plan.Plan, error) {
	// Precondition checks happen before the state machine transitions:
	// a rejected refine leaves no trace.
	if !c.state.HasPlan() {
		return nil, errors.NewPreconditionError("generate a plan first", errors.ErrNoPlanToRefine)
	}
	message := strings.TrimSpace(c.state.RefineDraft())
	if message == "" {
		return nil, errors.NewPreconditionError("enter a refinement first", errors.ErrEmptyRefinement)
	}

	release, err := c.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	userID, _, _ := c.state.Inputs()
	req := planning.RefineRequest{
		UserID:  userID,
		Message: message,
	}

	c.logger.Info("refining plan", "message", message)

	p, err := c.client.RefinePlan(ctx, req)
	if err != nil {
		c.logger.Warn("refine plan failed", "error", err)
		return nil, err
	}

	c.state.RecordRefine(p, message)
	c.logger.Info("plan refined",
		"days", len(p.Itinerary), "hotels", len(p.Hotels), "total", p.Total())
	return p, nil
}

// acquire claims the single-flight slot and raises the loading flag. The
// returned release func undoes both; callers defer it so the flag clears on
// every exit path, success or failure.
func (c *Controller) acquire() (func(), error) {
	if !c.inflight.CompareAndSwap(false, true) {
		return nil, errors.ErrRequestInFlight
	}
	c.state.SetLoading(true)

	return func() {
		c.state.SetLoading(false)
		c.inflight.Store(false)
	}, nil
}
