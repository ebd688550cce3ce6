package definition

import (
	"fmt"
	"slices"
	"strings"
)

// Condition is a predicate over one answer. All set clauses must hold.
type Condition struct {
	Field     string   `yaml:"field" toml:"field"`
	Equals    *string  `yaml:"equals,omitempty" toml:"equals"`
	NotEquals *string  `yaml:"not_equals,omitempty" toml:"not_equals"`
	In        []string `yaml:"in,omitempty" toml:"in"`
	// Set matches when the answer is (true) or is not (false) non-empty.
	Set *bool `yaml:"set,omitempty" toml:"set"`
}

func (c Condition) empty() bool {
	return c.Equals == nil && c.NotEquals == nil && len(c.In) == 0 && c.Set == nil
}

// Matches evaluates the condition against the answers.
func (c Condition) Matches(a *Answers) bool {
	v, _ := a.Get(c.Field)

	if c.Equals != nil && v != *c.Equals {
		return false
	}
	if c.NotEquals != nil && v == *c.NotEquals {
		return false
	}
	if len(c.In) > 0 && !slices.Contains(c.In, v) {
		return false
	}
	if c.Set != nil && *c.Set != (v != "") {
		return false
	}
	return true
}

// String renders the condition for graph output.
func (c Condition) String() string {
	var parts []string
	if c.Equals != nil {
		parts = append(parts, fmt.Sprintf("%s == %q", c.Field, *c.Equals))
	}
	if c.NotEquals != nil {
		parts = append(parts, fmt.Sprintf("%s != %q", c.Field, *c.NotEquals))
	}
	if len(c.In) > 0 {
		parts = append(parts, fmt.Sprintf("%s in [%s]", c.Field, strings.Join(c.In, ", ")))
	}
	if c.Set != nil {
		if *c.Set {
			parts = append(parts, c.Field+" is set")
		} else {
			parts = append(parts, c.Field+" is empty")
		}
	}
	return strings.Join(parts, " && ")
}
