package definition

import (
	"maps"
	"slices"
	"strconv"
)

// Answers holds the values collected by a wizard run. Text values and
// confirm flags are stored behind stable pointers so form widgets can bind
// to them directly.
type Answers struct {
	values map[string]*string
	flags  map[string]*bool
}

// NewAnswers returns an empty store.
func NewAnswers() *Answers {
	return &Answers{
		values: make(map[string]*string),
		flags:  make(map[string]*bool),
	}
}

// NewAnswersFor returns a store seeded with the field defaults of d. A
// select without a default starts on its first option.
func NewAnswersFor(d *Definition) *Answers {
	a := NewAnswers()
	for _, step := range d.Steps {
		for _, f := range step.Fields {
			if f.EffectiveKind() == KindConfirm {
				b, _ := strconv.ParseBool(f.Default)
				*a.Flag(f.Key) = b
				continue
			}
			*a.Value(f.Key) = f.initialValue()
		}
	}
	return a
}

// Value returns the pointer backing a text answer, creating it if needed.
func (a *Answers) Value(key string) *string {
	if p, ok := a.values[key]; ok {
		return p
	}
	p := new(string)
	a.values[key] = p
	return p
}

// Flag returns the pointer backing a confirm answer, creating it if needed.
func (a *Answers) Flag(key string) *bool {
	if p, ok := a.flags[key]; ok {
		return p
	}
	p := new(bool)
	a.flags[key] = p
	return p
}

// Get returns an answer as a string. Flags render as "true" or "false".
func (a *Answers) Get(key string) (string, bool) {
	if p, ok := a.flags[key]; ok {
		return strconv.FormatBool(*p), true
	}
	if p, ok := a.values[key]; ok {
		return *p, true
	}
	return "", false
}

// Set stores a text answer.
func (a *Answers) Set(key, v string) {
	*a.Value(key) = v
}

// SetFlag stores a confirm answer.
func (a *Answers) SetFlag(key string, v bool) {
	*a.Flag(key) = v
}

// Keys returns all answer keys, sorted.
func (a *Answers) Keys() []string {
	keys := slices.Collect(maps.Keys(a.values))
	keys = append(keys, slices.Collect(maps.Keys(a.flags))...)
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Snapshot returns a plain copy of the answers. Flags keep their bool type.
func (a *Answers) Snapshot() map[string]any {
	out := make(map[string]any, len(a.values)+len(a.flags))
	for k, p := range a.values {
		out[k] = *p
	}
	for k, p := range a.flags {
		out[k] = *p
	}
	return out
}
