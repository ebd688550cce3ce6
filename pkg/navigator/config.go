package navigator

import (
	"fmt"
	"maps"
)

// Config describes a wizard. Only InitialState and NextSteps are required;
// steps missing from NextSteps are terminal and steps missing from
// Validations are always valid.
//
// The hooks are optional. When unset, the navigator logs the event through
// its logger and continues; embedding applications are expected to supply
// real handlers.
type Config struct {
	InitialState StepID
	NextSteps    map[StepID]NextStepRule
	Validations  map[StepID]Validator

	// Titles looks up the title attached to a step. The navigator consults
	// it after every successful transition and passes a found title to
	// SetTitle.
	Titles TitleLookup

	DisplayValidations func(message string)
	SetTitle           func(title string)
	Finish             func()
}

// validate checks the parts of the config the navigator relies on.
func (c Config) validate() error {
	if c.InitialState == "" {
		return ErrNoInitialState
	}
	for from, rule := range c.NextSteps {
		if rule.kind == ruleLiteral && rule.step == "" {
			return fmt.Errorf("%w (from %q)", ErrEmptyTarget, from)
		}
	}
	return nil
}

// clone copies the maps so later changes by the caller do not leak in.
func (c Config) clone() Config {
	c.NextSteps = maps.Clone(c.NextSteps)
	c.Validations = maps.Clone(c.Validations)
	return c
}
