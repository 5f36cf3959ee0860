package session

import (
	"sync"
	"testing"
	"time"

	"concierge/internal/plan"
)

func TestNewState_Empty(t *testing.T) {
	s := NewState()

	if s.HasPlan() {
		t.Error("new state should have no plan")
	}
	if s.Loading() {
		t.Error("new state should not be loading")
	}
	if s.HistoryLen() != 0 {
		t.Error("new state should have empty history")
	}
	if s.ID() == "" {
		t.Error("state should carry a session id")
	}
}

func TestState_Inputs(t *testing.T) {
	s := NewState()
	s.SetInputs("ajay", "Chennai", 1000)

	userID, destination, budget := s.Inputs()
	if userID != "ajay" || destination != "Chennai" || budget != 1000 {
		t.Errorf("Inputs() = %q, %q, %v", userID, destination, budget)
	}
}

func TestState_RecordPlan(t *testing.T) {
	s := NewState()
	p := &plan.Plan{TotalEstimatedCost: 850}

	before := time.Now()
	s.RecordPlan(p)
	after := time.Now()

	if s.Plan() != p {
		t.Error("Plan() should return the exact recorded plan")
	}

	history := s.History()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	entry := history[0]
	if entry.Kind != KindPlan {
		t.Errorf("Kind = %q, want %q", entry.Kind, KindPlan)
	}
	if entry.Payload != p {
		t.Error("Payload should be the plan by reference")
	}
	if entry.Message != "" {
		t.Errorf("plan entries carry no message, got %q", entry.Message)
	}
	if entry.Timestamp.Before(before) || entry.Timestamp.After(after) {
		t.Error("Timestamp should be the completion instant")
	}
}

func TestState_RecordRefine(t *testing.T) {
	s := NewState()
	first := &plan.Plan{TotalEstimatedCost: 850}
	second := &plan.Plan{TotalEstimatedCost: 700}

	s.RecordPlan(first)
	s.SetRefineDraft("make it cheaper")
	s.RecordRefine(second, "make it cheaper")

	if s.Plan() != second {
		t.Error("refine should replace the current plan")
	}
	if s.RefineDraft() != "" {
		t.Error("refine should clear the draft")
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Kind != KindRefine {
		t.Errorf("newest entry kind = %q, want refine", history[0].Kind)
	}
	if history[0].Message != "make it cheaper" {
		t.Errorf("Message = %q", history[0].Message)
	}
	if history[1].Kind != KindPlan {
		t.Error("older entry should remain below the newer one")
	}
}

func TestState_HistoryNewestFirstAndGrowsByOne(t *testing.T) {
	s := NewState()

	for i := 0; i < 5; i++ {
		prev := s.HistoryLen()
		s.RecordPlan(&plan.Plan{TotalEstimatedCost: float64(i)})
		if s.HistoryLen() != prev+1 {
			t.Fatalf("history should grow by exactly one, was %d now %d", prev, s.HistoryLen())
		}
	}

	history := s.History()
	if history[0].Payload.TotalEstimatedCost != 4 {
		t.Error("newest entry should be at index 0")
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.After(history[i-1].Timestamp) {
			t.Error("history should be ordered by completion time, newest first")
		}
	}
}

func TestState_HistoryReturnsCopy(t *testing.T) {
	s := NewState()
	s.RecordPlan(&plan.Plan{})

	history := s.History()
	history[0] = Entry{Kind: KindRefine}

	if s.History()[0].Kind != KindPlan {
		t.Error("mutating the returned slice should not affect the state")
	}
}

func TestState_Loading(t *testing.T) {
	s := NewState()

	s.SetLoading(true)
	if !s.Loading() {
		t.Error("loading should be true after SetLoading(true)")
	}
	s.SetLoading(false)
	if s.Loading() {
		t.Error("loading should be false after SetLoading(false)")
	}
}

func TestState_ConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.RecordPlan(&plan.Plan{})
		}()
		go func() {
			defer wg.Done()
			_ = s.History()
			_ = s.Plan()
			_ = s.Loading()
		}()
	}
	wg.Wait()

	if s.HistoryLen() != 8 {
		t.Errorf("history length = %d, want 8", s.HistoryLen())
	}
}

func TestState_IsolatedSessions(t *testing.T) {
	a := NewState()
	b := NewState()

	a.RecordPlan(&plan.Plan{})

	if b.HasPlan() || b.HistoryLen() != 0 {
		t.Error("sessions must not share state")
	}
	if a.ID() == b.ID() {
		t.Error("sessions should have distinct ids")
	}
}
