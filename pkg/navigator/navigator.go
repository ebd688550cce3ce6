package navigator

import (
	"github.com/go-logr/logr"
)

// Navigator tracks the current step of one wizard. It is not safe for
// concurrent use; each wizard instance owns its own Navigator.
type Navigator struct {
	cfg       Config
	history   history
	log       logr.Logger
	observers []Observer
}

// New validates cfg, builds a navigator and initializes it on
// cfg.InitialState.
func New(cfg Config, opts ...Option) (*Navigator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := &Navigator{
		cfg: cfg.clone(),
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.applyDefaultHooks()
	n.initialize()

	return n, nil
}

func (n *Navigator) applyDefaultHooks() {
	if n.cfg.DisplayValidations == nil {
		n.cfg.DisplayValidations = func(message string) {
			n.log.Info("validation blocked navigation; no DisplayValidations hook set", "step", n.Current(), "message", message)
		}
	}
	if n.cfg.SetTitle == nil {
		n.cfg.SetTitle = func(title string) {
			n.log.V(1).Info("step title changed; no SetTitle hook set", "step", n.Current(), "title", title)
		}
	}
	if n.cfg.Finish == nil {
		n.cfg.Finish = func() {
			n.log.Info("wizard finished; no Finish hook set", "step", n.Current())
		}
	}
}

// initialize seeds the empty history with the initial step.
func (n *Navigator) initialize() {
	n.history.push(n.cfg.InitialState)
	n.log.V(1).Info("wizard initialized", "step", n.cfg.InitialState)
	n.announceTitle()
}

// Current returns the current step.
func (n *Navigator) Current() StepID {
	return n.history.top()
}

// History returns a copy of the visited steps, oldest first.
func (n *Navigator) History() []StepID {
	return n.history.snapshot()
}

// Depth returns the number of steps in the history.
func (n *Navigator) Depth() int {
	return n.history.len()
}

// IsAtRoot reports whether the current step is the initial one, in which
// case back navigation should be presented as disabled.
func (n *Navigator) IsAtRoot() bool {
	return n.history.len() == 1
}

// ResolveNextStep returns the step Advance would move to, without moving.
// It returns false when the current step is terminal.
func (n *Navigator) ResolveNextStep() (StepID, bool) {
	rule, ok := n.cfg.NextSteps[n.Current()]
	if !ok {
		return "", false
	}
	return rule.Next()
}

// HasNext reports whether the current step has a successor. UI layers use it
// to label the forward control as Next or Finish.
func (n *Navigator) HasNext() bool {
	_, ok := n.ResolveNextStep()
	return ok
}

// CurrentStepTitle returns the title attached to the current step.
func (n *Navigator) CurrentStepTitle() (string, bool) {
	if n.cfg.Titles == nil {
		return "", false
	}
	title, ok := n.cfg.Titles(n.Current())
	if !ok || title == "" {
		return "", false
	}
	return title, true
}

// Advance validates the current step and moves to its successor. When the
// validator rejects the step the history is left untouched and the message
// goes to DisplayValidations. When there is no successor the Finish hook
// runs and the navigator stays on the current step.
func (n *Navigator) Advance() Outcome {
	from := n.Current()

	if validate, ok := n.cfg.Validations[from]; ok && validate != nil {
		if msg := validate(); msg != "" {
			n.cfg.DisplayValidations(msg)
			return n.record(from, Outcome{Kind: Blocked, Step: from, Message: msg})
		}
	}

	next, ok := n.ResolveNextStep()
	if !ok {
		n.cfg.Finish()
		return n.record(from, Outcome{Kind: Finished, Step: from})
	}

	n.history.push(next)
	n.announceTitle()
	return n.record(from, Outcome{Kind: Advanced, Step: next})
}

// Retreat pops the current step and returns to the previous one. It never
// consults validators. On the initial step it does nothing and reports
// AtRoot.
func (n *Navigator) Retreat() Outcome {
	from := n.Current()

	if !n.history.pop() {
		return n.record(from, Outcome{Kind: AtRoot, Step: from})
	}

	n.announceTitle()
	return n.record(from, Outcome{Kind: Retreated, Step: n.Current()})
}

func (n *Navigator) announceTitle() {
	if title, ok := n.CurrentStepTitle(); ok {
		n.cfg.SetTitle(title)
	}
}

func (n *Navigator) record(from StepID, out Outcome) Outcome {
	n.log.V(1).Info("navigation", "from", from, "outcome", out.Kind.String(), "step", out.Step, "depth", n.history.len())
	for _, o := range n.observers {
		o.Observe(from, out)
	}
	return out
}
