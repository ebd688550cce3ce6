package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imamik/wizflow/internal/definition"
	"github.com/imamik/wizflow/internal/labels"
	"github.com/imamik/wizflow/pkg/navigator"
)

// Model is the Bubble Tea model for one wizard run. Navigation state lives
// in the navigator and is updated synchronously inside Update; View only
// reads it.
type Model struct {
	def     *definition.Definition
	answers *definition.Answers
	nav     *navigator.Navigator
	labels  *labels.Labels
	form    *huh.Form

	// Set by navigator hooks.
	stepTitle  string
	validation string
	finished   bool

	forward   string
	cancelled bool
	width     int
	height    int
}

// New compiles def against answers and returns a model positioned on the
// initial step.
func New(def *definition.Definition, answers *definition.Answers, l *labels.Labels, opts ...navigator.Option) (*Model, error) {
	cfg, err := def.Compile(answers)
	if err != nil {
		return nil, err
	}

	m := &Model{
		def:     def,
		answers: answers,
		labels:  l,
	}
	cfg.SetTitle = func(title string) { m.stepTitle = title }
	cfg.DisplayValidations = func(msg string) { m.validation = msg }
	cfg.Finish = func() { m.finished = true }

	nav, err := navigator.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	m.nav = nav
	m.loadStep()

	return m, nil
}

// Navigator returns the navigator driven by the model.
func (m *Model) Navigator() *navigator.Navigator { return m.nav }

// Finished reports whether the wizard reached its finish hook.
func (m *Model) Finished() bool { return m.finished }

// Cancelled reports whether the user quit.
func (m *Model) Cancelled() bool { return m.cancelled }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit:
			m.cancelled = true
			return m, tea.Quit
		case keyBack:
			return m.retreat()
		case keyNext:
			if m.form == nil {
				return m.advance()
			}
		}
	}

	if m.form == nil {
		return m, nil
	}

	fm, cmd := m.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form = f
	}
	if m.currentStep().AffectsNav() {
		m.refreshForward()
	}

	switch m.form.State {
	case huh.StateCompleted:
		next, advanceCmd := m.advance()
		return next, tea.Batch(cmd, advanceCmd)
	case huh.StateAborted:
		m.cancelled = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *Model) advance() (tea.Model, tea.Cmd) {
	prevTitle := m.stepTitle
	m.stepTitle = ""
	out := m.nav.Advance()
	if !out.Moved() {
		m.stepTitle = prevTitle
	}

	switch out.Kind {
	case navigator.Advanced:
		m.validation = ""
		m.loadStep()
		return m, m.Init()
	case navigator.Blocked:
		// The completed form cannot take input anymore; rebuild it over the
		// same answers so the user can fix them.
		m.loadStep()
		return m, m.Init()
	case navigator.Finished:
		if m.finished {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) retreat() (tea.Model, tea.Cmd) {
	prevTitle := m.stepTitle
	m.stepTitle = ""
	if out := m.nav.Retreat(); !out.Moved() {
		m.stepTitle = prevTitle
		return m, nil
	}
	m.validation = ""
	m.loadStep()
	return m, m.Init()
}

func (m *Model) currentStep() *definition.Step {
	step, ok := m.def.StepFor(m.nav.Current())
	if !ok {
		return &definition.Step{ID: string(m.nav.Current())}
	}
	return step
}

func (m *Model) loadStep() {
	m.form = buildForm(m.currentStep(), m.answers, m.width)
	m.refreshForward()
}

func (m *Model) refreshForward() {
	m.forward = m.labels.Forward(m.nav.HasNext())
}

// View implements tea.Model.
func (m *Model) View() string {
	return renderView(m)
}
