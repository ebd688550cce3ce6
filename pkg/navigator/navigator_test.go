package navigator

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearConfig() Config {
	return Config{
		InitialState: "A",
		NextSteps: map[StepID]NextStepRule{
			"A": Literal("B"),
			"B": Literal("C"),
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("seeds history with initial state", func(t *testing.T) {
		nav, err := New(linearConfig())
		require.NoError(t, err)

		assert.Equal(t, []StepID{"A"}, nav.History())
		assert.Equal(t, StepID("A"), nav.Current())
		assert.True(t, nav.IsAtRoot())
		assert.Equal(t, 1, nav.Depth())
	})

	t.Run("rejects missing initial state", func(t *testing.T) {
		_, err := New(Config{})
		assert.ErrorIs(t, err, ErrNoInitialState)
	})

	t.Run("rejects literal with empty target", func(t *testing.T) {
		_, err := New(Config{
			InitialState: "A",
			NextSteps:    map[StepID]NextStepRule{"A": Literal("")},
		})
		assert.ErrorIs(t, err, ErrEmptyTarget)
	})

	t.Run("copies the config maps", func(t *testing.T) {
		cfg := linearConfig()
		nav, err := New(cfg)
		require.NoError(t, err)

		cfg.NextSteps["A"] = Literal("Z")

		next, ok := nav.ResolveNextStep()
		assert.True(t, ok)
		assert.Equal(t, StepID("B"), next)
	})

	t.Run("announces initial title", func(t *testing.T) {
		var titles []string
		cfg := linearConfig()
		cfg.Titles = func(s StepID) (string, bool) { return "Step " + string(s), true }
		cfg.SetTitle = func(title string) { titles = append(titles, title) }

		_, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{"Step A"}, titles)
	})
}

func TestResolveNextStep(t *testing.T) {
	tests := []struct {
		name   string
		rules  map[StepID]NextStepRule
		want   StepID
		wantOK bool
	}{
		{"literal", map[StepID]NextStepRule{"A": Literal("B")}, "B", true},
		{"resolver", map[StepID]NextStepRule{"A": Resolve(func() (StepID, bool) { return "C", true })}, "C", true},
		{"resolver with no value", map[StepID]NextStepRule{"A": Resolve(func() (StepID, bool) { return "", false })}, "", false},
		{"nil resolver", map[StepID]NextStepRule{"A": Resolve(nil)}, "", false},
		{"zero rule", map[StepID]NextStepRule{"A": {}}, "", false},
		{"no entry", map[StepID]NextStepRule{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := New(Config{InitialState: "A", NextSteps: tt.rules})
			require.NoError(t, err)

			got, ok := nav.ResolveNextStep()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, nav.HasNext())
			assert.Equal(t, []StepID{"A"}, nav.History(), "resolve must not mutate history")
		})
	}
}

func TestAdvance_Linear(t *testing.T) {
	nav, err := New(linearConfig())
	require.NoError(t, err)

	out := nav.Advance()
	assert.Equal(t, Outcome{Kind: Advanced, Step: "B"}, out)
	assert.False(t, nav.IsAtRoot())

	out = nav.Advance()
	assert.Equal(t, Outcome{Kind: Advanced, Step: "C"}, out)
	assert.Equal(t, []StepID{"A", "B", "C"}, nav.History())

	out = nav.Retreat()
	assert.Equal(t, Outcome{Kind: Retreated, Step: "B"}, out)
	assert.Equal(t, StepID("B"), nav.Current())
}

func TestAdvance_Blocked(t *testing.T) {
	var shown []string
	nav, err := New(Config{
		InitialState: "V1",
		NextSteps:    map[StepID]NextStepRule{"V1": Literal("V2")},
		Validations: map[StepID]Validator{
			"V1": func() string { return "please fill field" },
		},
		DisplayValidations: func(msg string) { shown = append(shown, msg) },
	})
	require.NoError(t, err)

	for range 2 {
		out := nav.Advance()
		assert.Equal(t, Outcome{Kind: Blocked, Step: "V1", Message: "please fill field"}, out)
		assert.Equal(t, []StepID{"V1"}, nav.History())
	}
	assert.Equal(t, []string{"please fill field", "please fill field"}, shown)
}

func TestAdvance_ValidatorPasses(t *testing.T) {
	filled := false
	nav, err := New(Config{
		InitialState: "V1",
		NextSteps:    map[StepID]NextStepRule{"V1": Literal("V2")},
		Validations: map[StepID]Validator{
			"V1": func() string {
				if !filled {
					return "please fill field"
				}
				return ""
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, Blocked, nav.Advance().Kind)

	filled = true
	assert.Equal(t, Outcome{Kind: Advanced, Step: "V2"}, nav.Advance())
}

func TestAdvance_Finished(t *testing.T) {
	finishCalls := 0
	nav, err := New(Config{
		InitialState: "X",
		NextSteps:    map[StepID]NextStepRule{},
		Finish:       func() { finishCalls++ },
	})
	require.NoError(t, err)

	out := nav.Advance()
	assert.Equal(t, Outcome{Kind: Finished, Step: "X"}, out)
	assert.Equal(t, 1, finishCalls)
	assert.Equal(t, []StepID{"X"}, nav.History())

	// Advancing again from a terminal step re-invokes Finish.
	nav.Advance()
	assert.Equal(t, 2, finishCalls)
	assert.Equal(t, []StepID{"X"}, nav.History())
}

func TestAdvance_ValidationRunsBeforeFinish(t *testing.T) {
	finished := false
	nav, err := New(Config{
		InitialState: "X",
		Validations:  map[StepID]Validator{"X": func() string { return "nope" }},
		Finish:       func() { finished = true },
	})
	require.NoError(t, err)

	assert.Equal(t, Blocked, nav.Advance().Kind)
	assert.False(t, finished)
}

func TestAdvance_Resolver(t *testing.T) {
	plan := "free"
	nav, err := New(Config{
		InitialState: "A",
		NextSteps: map[StepID]NextStepRule{
			"A": Resolve(func() (StepID, bool) {
				if plan == "pro" {
					return "billing", true
				}
				return "done", true
			}),
		},
	})
	require.NoError(t, err)

	next, _ := nav.ResolveNextStep()
	assert.Equal(t, StepID("done"), next)

	plan = "pro"
	next, _ = nav.ResolveNextStep()
	assert.Equal(t, StepID("billing"), next)

	assert.Equal(t, Outcome{Kind: Advanced, Step: "billing"}, nav.Advance())
}

func TestAdvance_ResolverEmptyStepFinishes(t *testing.T) {
	finished := 0
	nav, err := New(Config{
		InitialState: "A",
		NextSteps: map[StepID]NextStepRule{
			"A": Resolve(func() (StepID, bool) { return "", true }),
		},
		Finish: func() { finished++ },
	})
	require.NoError(t, err)

	assert.False(t, nav.HasNext())
	assert.Equal(t, Finished, nav.Advance().Kind)
	assert.Equal(t, 1, finished)
	assert.Equal(t, []StepID{"A"}, nav.History())
}

func TestRetreat(t *testing.T) {
	t.Run("at root is a no-op", func(t *testing.T) {
		nav, err := New(linearConfig())
		require.NoError(t, err)

		out := nav.Retreat()
		assert.Equal(t, Outcome{Kind: AtRoot, Step: "A"}, out)
		assert.Equal(t, 1, nav.Depth())

		nav.Retreat()
		assert.Equal(t, 1, nav.Depth())
	})

	t.Run("ignores validators", func(t *testing.T) {
		nav, err := New(Config{
			InitialState: "A",
			NextSteps:    map[StepID]NextStepRule{"A": Literal("B")},
			Validations:  map[StepID]Validator{"B": func() string { return "blocked" }},
		})
		require.NoError(t, err)

		nav.Advance()
		assert.Equal(t, Outcome{Kind: Retreated, Step: "A"}, nav.Retreat())
		assert.True(t, nav.IsAtRoot())
	})

	t.Run("inverts advance", func(t *testing.T) {
		nav, err := New(linearConfig())
		require.NoError(t, err)

		before := nav.History()
		nav.Advance()
		nav.Retreat()
		assert.Equal(t, before, nav.History())
	})
}

func TestTitles(t *testing.T) {
	var titles []string
	cfg := linearConfig()
	cfg.Titles = func(s StepID) (string, bool) {
		switch s {
		case "A":
			return "First", true
		case "B":
			return "Second", true
		}
		return "", false
	}
	cfg.SetTitle = func(title string) { titles = append(titles, title) }
	cfg.Validations = map[StepID]Validator{}

	nav, err := New(cfg)
	require.NoError(t, err)

	nav.Advance() // B
	nav.Advance() // C, untitled
	nav.Retreat() // B
	nav.Retreat() // A
	nav.Retreat() // at root

	assert.Equal(t, []string{"First", "Second", "Second", "First"}, titles)

	title, ok := nav.CurrentStepTitle()
	assert.True(t, ok)
	assert.Equal(t, "First", title)
}

func TestTitles_NotAnnouncedOnBlockedOrFinished(t *testing.T) {
	calls := 0
	nav, err := New(Config{
		InitialState: "A",
		Validations:  map[StepID]Validator{"A": func() string { return "x" }},
		Titles:       func(StepID) (string, bool) { return "Title", true },
		SetTitle:     func(string) { calls++ },
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	nav.Advance()
	assert.Equal(t, 1, calls)
}

func TestObserver(t *testing.T) {
	type event struct {
		from StepID
		kind OutcomeKind
	}
	var events []event

	nav, err := New(linearConfig(), WithObserver(ObserverFunc(func(from StepID, o Outcome) {
		events = append(events, event{from, o.Kind})
	})), WithObserver(nil))
	require.NoError(t, err)

	nav.Retreat()
	nav.Advance()
	nav.Advance()
	nav.Advance()
	nav.Retreat()

	assert.Equal(t, []event{
		{"A", AtRoot},
		{"A", Advanced},
		{"B", Advanced},
		{"C", Finished},
		{"C", Retreated},
	}, events)
}

func TestDefaultHooksLogAndContinue(t *testing.T) {
	nav, err := New(Config{
		InitialState: "A",
		NextSteps:    map[StepID]NextStepRule{"A": Literal("B")},
		Validations:  map[StepID]Validator{"B": func() string { return "missing" }},
		Titles:       func(StepID) (string, bool) { return "t", true },
	}, WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
	require.NoError(t, err)

	assert.Equal(t, Advanced, nav.Advance().Kind)
	assert.Equal(t, Blocked, nav.Advance().Kind)
	assert.Equal(t, Retreated, nav.Retreat().Kind)
}

func TestHistoryIsACopy(t *testing.T) {
	nav, err := New(linearConfig())
	require.NoError(t, err)

	h := nav.History()
	h[0] = "mutated"

	assert.Equal(t, StepID("A"), nav.Current())
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		out  Outcome
		want string
	}{
		{Outcome{Kind: Advanced, Step: "B"}, "advanced(B)"},
		{Outcome{Kind: Retreated, Step: "A"}, "retreated(A)"},
		{Outcome{Kind: Blocked, Step: "A", Message: "bad"}, `blocked("bad")`},
		{Outcome{Kind: Finished, Step: "A"}, "finished"},
		{Outcome{Kind: AtRoot, Step: "A"}, "at_root"},
		{Outcome{}, "OutcomeKind(0)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.out.String())
	}

	assert.True(t, Outcome{Kind: Advanced}.Moved())
	assert.True(t, Outcome{Kind: Retreated}.Moved())
	assert.False(t, Outcome{Kind: Blocked}.Moved())
}
