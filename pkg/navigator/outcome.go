package navigator

import "fmt"

// OutcomeKind classifies the result of a navigation operation.
type OutcomeKind int

const (
	// Advanced means a new step was pushed onto the history.
	Advanced OutcomeKind = iota + 1
	// Blocked means the current step's validator rejected the transition.
	Blocked
	// Finished means the current step has no successor and the finish hook ran.
	Finished
	// Retreated means the current step was popped off the history.
	Retreated
	// AtRoot means back navigation was requested on the initial step.
	AtRoot
)

func (k OutcomeKind) String() string {
	switch k {
	case Advanced:
		return "advanced"
	case Blocked:
		return "blocked"
	case Finished:
		return "finished"
	case Retreated:
		return "retreated"
	case AtRoot:
		return "at_root"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of Advance or Retreat. Expected negative cases are
// outcomes, not errors.
type Outcome struct {
	Kind OutcomeKind
	// Step is the current step after the operation.
	Step StepID
	// Message carries the validation message of a Blocked outcome.
	Message string
}

func (o Outcome) String() string {
	switch o.Kind {
	case Blocked:
		return fmt.Sprintf("%s(%q)", o.Kind, o.Message)
	case Advanced, Retreated:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Step)
	default:
		return o.Kind.String()
	}
}

// Moved reports whether the operation changed the current step.
func (o Outcome) Moved() bool {
	return o.Kind == Advanced || o.Kind == Retreated
}
