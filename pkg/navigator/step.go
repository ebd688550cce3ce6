package navigator

// StepID identifies a step. The empty StepID never names a step.
type StepID string

// Resolver computes the next step at navigation time. Returning false ends
// the wizard at the current step.
type Resolver func() (StepID, bool)

// Validator gates forward navigation from a step. A non-empty message blocks
// the transition and is shown to the user.
type Validator func() string

// TitleLookup returns the title metadata attached to a step, if any.
type TitleLookup func(StepID) (string, bool)

type ruleKind int

const (
	ruleNone ruleKind = iota
	ruleLiteral
	ruleResolver
)

// NextStepRule maps a step to its successor: either a fixed step or a
// resolver evaluated when the wizard navigates. The zero value has no
// successor.
type NextStepRule struct {
	kind    ruleKind
	step    StepID
	resolve Resolver
}

// Literal returns a rule that always leads to step.
func Literal(step StepID) NextStepRule {
	return NextStepRule{kind: ruleLiteral, step: step}
}

// Resolve returns a rule that asks fn for the next step on every lookup.
// A nil fn behaves like the zero rule.
func Resolve(fn Resolver) NextStepRule {
	if fn == nil {
		return NextStepRule{}
	}
	return NextStepRule{kind: ruleResolver, resolve: fn}
}

// Next evaluates the rule.
func (r NextStepRule) Next() (StepID, bool) {
	switch r.kind {
	case ruleLiteral:
		return r.step, true
	case ruleResolver:
		id, ok := r.resolve()
		if !ok || id == "" {
			return "", false
		}
		return id, true
	default:
		return "", false
	}
}
