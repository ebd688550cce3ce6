package navigator

import "github.com/go-logr/logr"

// Observer is notified of every navigation outcome. from is the current
// step before the operation.
type Observer interface {
	Observe(from StepID, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(from StepID, outcome Outcome)

// Observe implements Observer.
func (f ObserverFunc) Observe(from StepID, outcome Outcome) { f(from, outcome) }

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for transitions and default hooks.
func WithLogger(log logr.Logger) Option {
	return func(n *Navigator) {
		n.log = log
	}
}

// WithObserver registers an observer. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(n *Navigator) {
		if o != nil {
			n.observers = append(n.observers, o)
		}
	}
}
