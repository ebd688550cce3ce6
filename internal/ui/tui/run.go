package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/wizflow/internal/definition"
	"github.com/imamik/wizflow/internal/labels"
	"github.com/imamik/wizflow/pkg/navigator"
)

// Options configures Run.
type Options struct {
	Labels     *labels.Labels
	AltScreen  bool
	Navigation []navigator.Option
}

// Run shows the wizard in the terminal until it finishes or the user
// quits, and returns the visited path.
func Run(ctx context.Context, def *definition.Definition, answers *definition.Answers, opts Options) ([]navigator.StepID, error) {
	l := opts.Labels
	if l == nil {
		l = labels.English()
	}

	m, err := New(def, answers, l, opts.Navigation...)
	if err != nil {
		return nil, err
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if !m.Finished() {
		return nil, ErrCancelled
	}
	return m.nav.History(), nil
}
