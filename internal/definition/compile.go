package definition

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/imamik/wizflow/pkg/navigator"
)

// Compile builds a navigator configuration whose resolvers and validators
// read from answers. Hooks are left unset for the binding layer to fill.
func (d *Definition) Compile(answers *Answers) (navigator.Config, error) {
	cfg := navigator.Config{
		InitialState: navigator.StepID(d.InitialStep()),
		NextSteps:    make(map[navigator.StepID]navigator.NextStepRule),
		Validations:  make(map[navigator.StepID]navigator.Validator),
		Titles: func(id navigator.StepID) (string, bool) {
			step, ok := d.StepFor(id)
			if !ok || step.Title == "" {
				return "", false
			}
			return step.Title, true
		},
	}

	for i := range d.Steps {
		step := &d.Steps[i]
		id := navigator.StepID(step.ID)

		if rule, ok := nextStepRule(step, answers); ok {
			cfg.NextSteps[id] = rule
		}

		v, err := stepValidator(step, answers)
		if err != nil {
			return navigator.Config{}, fmt.Errorf("step %q: %w", step.ID, err)
		}
		if v != nil {
			cfg.Validations[id] = v
		}
	}

	return cfg, nil
}

func nextStepRule(step *Step, answers *Answers) (navigator.NextStepRule, bool) {
	if len(step.Branches) == 0 {
		if step.Next == "" {
			return navigator.NextStepRule{}, false
		}
		return navigator.Literal(navigator.StepID(step.Next)), true
	}

	branches := step.Branches
	fallback := step.Next
	return navigator.Resolve(func() (navigator.StepID, bool) {
		for _, b := range branches {
			if b.When.Matches(answers) {
				return navigator.StepID(b.Goto), true
			}
		}
		if fallback == "" {
			return "", false
		}
		return navigator.StepID(fallback), true
	}), true
}

type fieldRule struct {
	field   Field
	pattern *regexp.Regexp
}

func stepValidator(step *Step, answers *Answers) (navigator.Validator, error) {
	var rules []fieldRule
	for _, f := range step.Fields {
		if !f.hasRules() {
			continue
		}
		r := fieldRule{field: f}
		if f.Pattern != "" {
			re, err := regexp.Compile(f.Pattern)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w: %w", f.Key, ErrInvalidPattern, err)
			}
			r.pattern = re
		}
		rules = append(rules, r)
	}

	if len(rules) == 0 {
		return nil, nil
	}

	return func() string {
		var msgs []string
		for _, r := range rules {
			if msg := r.check(answers); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "\n")
	}, nil
}

// check returns the validation message for one field, or "".
func (r fieldRule) check(answers *Answers) string {
	f := r.field

	if f.EffectiveKind() == KindConfirm {
		if f.Required && !*answers.Flag(f.Key) {
			return r.message(f.DisplayLabel() + " must be confirmed")
		}
		return ""
	}

	v := strings.TrimSpace(*answers.Value(f.Key))
	if v == "" {
		if f.Required {
			return r.message(f.DisplayLabel() + " is required")
		}
		return ""
	}
	if r.pattern != nil && !r.pattern.MatchString(v) {
		return r.message(fmt.Sprintf("%s must match %s", f.DisplayLabel(), f.Pattern))
	}
	return ""
}

func (r fieldRule) message(generated string) string {
	if r.field.Message != "" {
		return r.field.Message
	}
	return generated
}
