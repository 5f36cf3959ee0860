// Package session holds the in-memory state of one planning session: the
// user's inputs, the current plan, the loading flag, and the activity log.
// Nothing here is persisted; the state lives and dies with the process.
//
// Each session owns exactly one State. All mutation goes through its
// methods, so multiple sessions (or tests) run in isolation with no shared
// globals.
package session

import (
	"sync"

	"github.com/google/uuid"

	"concierge/internal/plan"
)

// State is the session's mutable state container. It is safe for concurrent
// use: the TUI reads it on every render while the controller mutates it on
// request resolution.
type State struct {
	mu sync.RWMutex

	// ID correlates log entries for this session.
	id string

	// User-editable inputs.
	userID      string
	destination string
	budget      float64
	refineDraft string

	// Request lifecycle.
	current *plan.Plan
	loading bool
	history []Entry
}

// NewState creates an empty session: no plan, not loading, no history.
func NewState() *State {
	return &State{
		id: uuid.NewString(),
	}
}

// ID returns the session's correlation id.
func (s *State) ID() string {
	return s.id
}

// SetInputs replaces the user-editable trip inputs.
func (s *State) SetInputs(userID, destination string, budget float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.destination = destination
	s.budget = budget
}

// Inputs returns the current trip inputs.
func (s *State) Inputs() (userID, destination string, budget float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, s.destination, s.budget
}

// SetRefineDraft replaces the pending refinement text.
func (s *State) SetRefineDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refineDraft = text
}

// RefineDraft returns the pending refinement text.
func (s *State) RefineDraft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refineDraft
}

// Plan returns the current plan, or nil when none exists yet.
func (s *State) Plan() *plan.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// HasPlan reports whether a plan exists.
func (s *State) HasPlan() bool {
	return s.Plan() != nil
}

// SetLoading flips the loading flag. True exactly while a create/refine
// request is outstanding.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading reports whether a request is outstanding.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// RecordPlan replaces the current plan with the response of a successful
// create request and appends the matching history entry. The two updates
// are a single atomic step: no reader observes one without the other.
func (s *State) RecordPlan(p *plan.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	s.prepend(newEntry(KindPlan, p, ""))
}

// RecordRefine replaces the current plan with the response of a successful
// refine request, appends the matching history entry, and clears the
// refinement draft.
func (s *State) RecordRefine(p *plan.Plan, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	s.refineDraft = ""
	s.prepend(newEntry(KindRefine, p, message))
}

// History returns the activity log, newest first. The returned slice is a
// copy; entries themselves are immutable.
func (s *State) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryLen returns the number of history entries.
func (s *State) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// prepend inserts an entry at the front of the history. Callers hold the
// write lock. History only ever grows.
func (s *State) prepend(e Entry) {
	s.history = append([]Entry{e}, s.history...)
}
