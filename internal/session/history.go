package session

import (
	"time"

	"concierge/internal/plan"
)

// Kind distinguishes the two request types recorded in the activity log.
type Kind string

const (
	// KindPlan marks an entry produced by a successful create request.
	KindPlan Kind = "plan"
	// KindRefine marks an entry produced by a successful refine request.
	KindRefine Kind = "refine"
)

// Entry is one line of the activity log. Entries are immutable once
// created; the payload is stored by reference and must not be mutated.
type Entry struct {
	// Kind is the request type that produced this entry.
	Kind Kind
	// Payload is the plan snapshot at completion time.
	Payload *plan.Plan
	// Message is the refinement text, present only for refine entries.
	Message string
	// Timestamp is the wall-clock instant of successful completion.
	Timestamp time.Time
}

// newEntry builds an entry stamped with the current time.
func newEntry(kind Kind, payload *plan.Plan, message string) Entry {
	return Entry{
		Kind:      kind,
		Payload:   payload,
		Message:   message,
		Timestamp: time.Now(),
	}
}
