// Package navigator implements the step-navigation state machine behind a
// wizard: one step is current at a time, forward navigation is resolved from
// a static or dynamic next-step rule and gated by an optional validator, and
// backward navigation walks a history stack.
//
// # Basic Usage
//
//	nav, err := navigator.New(navigator.Config{
//	    InitialState: "account",
//	    NextSteps: map[navigator.StepID]navigator.NextStepRule{
//	        "account": navigator.Literal("profile"),
//	        "profile": navigator.Resolve(func() (navigator.StepID, bool) {
//	            if answers.Plan == "pro" {
//	                return "billing", true
//	            }
//	            return "", false // terminal
//	        }),
//	    },
//	    Validations: map[navigator.StepID]navigator.Validator{
//	        "account": func() string {
//	            if answers.Name == "" {
//	                return "name is required"
//	            }
//	            return ""
//	        },
//	    },
//	    Finish: save,
//	})
//
//	switch out := nav.Advance(); out.Kind {
//	case navigator.Advanced:
//	    render(out.Step)
//	case navigator.Blocked:
//	    // DisplayValidations already received out.Message
//	case navigator.Finished:
//	    // Finish already ran
//	}
//
// # Rendering
//
// The navigator owns no rendering. Its state is updated synchronously when
// Advance or Retreat returns; a UI-binding layer renders the step reported
// by Current afterwards, with whatever transition it likes. Debouncing
// repeated activations of a navigation control is the caller's job.
//
// # Finishing
//
// Finished is a transition, not a state: the navigator stays parked on its
// last step, and every further Advance from a terminal step calls the Finish
// hook again.
package navigator
