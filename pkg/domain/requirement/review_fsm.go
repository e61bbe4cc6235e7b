package requirement

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Status is the review state of a requirement record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusAnalyzed  Status = "analyzed"
	StatusApproved  Status = "approved"
	StatusNeedsWork Status = "needs_work"
)

// IsValid returns true if the status is a recognized value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusAnalyzed, StatusApproved, StatusNeedsWork:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Review events.
const (
	EventAnalyze = "analyze"
	EventApprove = "approve"
	EventFlag    = "flag"
	EventReopen  = "reopen"
)

// ReviewContext carries the data guards need.
type ReviewContext struct {
	RequirementID string
	Gate          func(requirementID string) bool
}

// ReviewStateMachine enforces the review lifecycle:
// draft -> analyzed -> approved / needs_work, with reopen back to draft.
// The approve transition is guarded by a quality gate supplied by the
// caller (typically: last score meets the configured minimum).
type ReviewStateMachine struct {
	interpreter *statekit.Interpreter[ReviewContext]
}

// NewReviewStateMachine builds a machine starting in the given status.
func NewReviewStateMachine(initial Status, requirementID string, gate func(string) bool) (*ReviewStateMachine, error) {
	if !initial.IsValid() {
		return nil, fmt.Errorf("invalid initial status: %s", initial)
	}
	if gate == nil {
		gate = func(string) bool { return true }
	}

	builder := statekit.NewMachine[ReviewContext]("requirement-review").
		WithInitial(statekit.StateID(initial)).
		WithContext(ReviewContext{
			RequirementID: requirementID,
			Gate:          gate,
		}).
		WithGuard("qualityGate", func(ctx ReviewContext, e statekit.Event) bool {
			return ctx.Gate(ctx.RequirementID)
		})

	builder.State(statekit.StateID(StatusDraft)).
		On(EventAnalyze).Target(statekit.StateID(StatusAnalyzed)).
		Done()

	builder.State(statekit.StateID(StatusAnalyzed)).
		On(EventApprove).Target(statekit.StateID(StatusApproved)).Guard("qualityGate").
		On(EventFlag).Target(statekit.StateID(StatusNeedsWork)).
		On(EventAnalyze).Target(statekit.StateID(StatusAnalyzed)).
		Done()

	builder.State(statekit.StateID(StatusNeedsWork)).
		On(EventAnalyze).Target(statekit.StateID(StatusAnalyzed)).
		On(EventReopen).Target(statekit.StateID(StatusDraft)).
		Done()

	builder.State(statekit.StateID(StatusApproved)).
		On(EventReopen).Target(statekit.StateID(StatusDraft)).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build review machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &ReviewStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply the event, returning an error when the
// event is not valid in the current state or a guard rejected it.
func (sm *ReviewStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	// Self-transitions (re-analyze) are legal even though the state value
	// does not change.
	if before == after && !(event == EventAnalyze && before == StatusAnalyzed) {
		return fmt.Errorf("'%s' is not allowed while the requirement is '%s'", event, before)
	}
	return nil
}

// Current returns the current status.
func (sm *ReviewStateMachine) Current() Status {
	return Status(sm.interpreter.State().Value)
}
