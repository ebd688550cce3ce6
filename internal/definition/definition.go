package definition

import "github.com/imamik/wizflow/pkg/navigator"

// FieldKind selects the input control used for a field.
type FieldKind string

// Field kinds.
const (
	KindInput   FieldKind = "input"
	KindText    FieldKind = "text"
	KindSelect  FieldKind = "select"
	KindConfirm FieldKind = "confirm"
)

// Definition is a wizard document.
type Definition struct {
	Name        string `yaml:"name" toml:"name"`
	Title       string `yaml:"title,omitempty" toml:"title"`
	Description string `yaml:"description,omitempty" toml:"description"`
	// Initial is the first step. Defaults to the first declared step.
	Initial string `yaml:"initial,omitempty" toml:"initial"`
	Steps   []Step `yaml:"steps" toml:"steps"`
}

// Step is one panel of the wizard.
type Step struct {
	ID          string  `yaml:"id" toml:"id"`
	Title       string  `yaml:"title,omitempty" toml:"title"`
	Description string  `yaml:"description,omitempty" toml:"description"`
	Fields      []Field `yaml:"fields,omitempty" toml:"fields"`

	// Branches are evaluated in order; the first matching branch wins.
	Branches []Branch `yaml:"branches,omitempty" toml:"branches"`
	// Next applies when no branch matches. Empty means the step can finish
	// the wizard.
	Next string `yaml:"next,omitempty" toml:"next"`
}

// Field is an input collected on a step.
type Field struct {
	Key         string    `yaml:"key" toml:"key"`
	Label       string    `yaml:"label,omitempty" toml:"label"`
	Description string    `yaml:"description,omitempty" toml:"description"`
	Kind        FieldKind `yaml:"kind,omitempty" toml:"kind"`
	Options     []string  `yaml:"options,omitempty" toml:"options"`
	Default     string    `yaml:"default,omitempty" toml:"default"`
	Placeholder string    `yaml:"placeholder,omitempty" toml:"placeholder"`

	Required bool   `yaml:"required,omitempty" toml:"required"`
	Pattern  string `yaml:"pattern,omitempty" toml:"pattern"`
	// Message replaces the generated validation message.
	Message string `yaml:"message,omitempty" toml:"message"`

	// AffectsNav marks fields whose value can change the next step.
	AffectsNav bool `yaml:"affects_nav,omitempty" toml:"affects_nav"`
}

// Branch routes to Goto when When matches.
type Branch struct {
	When Condition `yaml:"when" toml:"when"`
	Goto string    `yaml:"goto" toml:"goto"`
}

// InitialStep returns the step the wizard starts on.
func (d *Definition) InitialStep() string {
	if d.Initial != "" {
		return d.Initial
	}
	if len(d.Steps) > 0 {
		return d.Steps[0].ID
	}
	return ""
}

// Step returns the step with the given id.
func (d *Definition) Step(id string) (*Step, bool) {
	for i := range d.Steps {
		if d.Steps[i].ID == id {
			return &d.Steps[i], true
		}
	}
	return nil, false
}

// StepFor is Step keyed by a navigator step id.
func (d *Definition) StepFor(id navigator.StepID) (*Step, bool) {
	return d.Step(string(id))
}

// Position returns the 1-based declaration index of a step, or 0.
func (d *Definition) Position(id string) int {
	for i := range d.Steps {
		if d.Steps[i].ID == id {
			return i + 1
		}
	}
	return 0
}

// AffectsNav reports whether any field on the step can change its
// successor.
func (s *Step) AffectsNav() bool {
	for _, f := range s.Fields {
		if f.AffectsNav {
			return true
		}
	}
	return false
}

// EffectiveKind returns the field kind, defaulting to KindInput.
func (f Field) EffectiveKind() FieldKind {
	if f.Kind == "" {
		return KindInput
	}
	return f.Kind
}

// DisplayLabel returns the label, falling back to the key.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// initialValue is the answer a field starts with.
func (f Field) initialValue() string {
	if f.Default == "" && f.EffectiveKind() == KindSelect && len(f.Options) > 0 {
		return f.Options[0]
	}
	return f.Default
}

func (f Field) hasRules() bool {
	return f.Required || f.Pattern != ""
}
