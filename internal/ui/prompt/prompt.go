// Package prompt drives a wizard over plain line-based input and output,
// for terminals without cursor control and for scripted runs.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/imamik/wizflow/internal/definition"
	"github.com/imamik/wizflow/internal/labels"
	"github.com/imamik/wizflow/pkg/navigator"
)

// Commands accepted at any prompt.
const (
	CommandBack = ":back"
	CommandQuit = ":quit"
)

var (
	// ErrCancelled is returned when the user quits.
	ErrCancelled = errors.New("wizard cancelled")
	// ErrInputClosed is returned when input ends before the wizard finishes.
	ErrInputClosed = errors.New("input closed before the wizard finished")
)

// Options configures Run.
type Options struct {
	Labels     *labels.Labels
	Navigation []navigator.Option
}

// errBack unwinds a step prompt after a back command.
var errBack = errors.New("back")

type runner struct {
	def     *definition.Definition
	answers *definition.Answers
	labels  *labels.Labels
	nav     *navigator.Navigator
	in      *bufio.Scanner
	out     io.Writer

	title      string
	validation string
	finished   bool
}

// Run asks the questions of each step on out, reads replies from in and
// returns the visited path once the wizard finishes.
func Run(ctx context.Context, def *definition.Definition, answers *definition.Answers, in io.Reader, out io.Writer, opts Options) ([]navigator.StepID, error) {
	cfg, err := def.Compile(answers)
	if err != nil {
		return nil, err
	}

	r := &runner{
		def:     def,
		answers: answers,
		labels:  opts.Labels,
		in:      bufio.NewScanner(in),
		out:     out,
	}
	if r.labels == nil {
		r.labels = labels.English()
	}
	cfg.SetTitle = func(title string) { r.title = title }
	cfg.DisplayValidations = func(msg string) { r.validation = msg }
	cfg.Finish = func() { r.finished = true }

	r.nav, err = navigator.New(cfg, opts.Navigation...)
	if err != nil {
		return nil, err
	}

	for !r.finished {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.step(); err != nil {
			return nil, err
		}
	}
	return r.nav.History(), nil
}

// step shows the current step, collects its answers and moves the navigator.
func (r *runner) step() error {
	step, ok := r.def.StepFor(r.nav.Current())
	if !ok {
		step = &definition.Step{ID: string(r.nav.Current())}
	}

	r.printHeader(step)

	for _, f := range step.Fields {
		err := r.askField(f)
		if errors.Is(err, errBack) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if len(step.Fields) == 0 {
		line, err := r.ask(fmt.Sprintf("[%s] ", r.labels.Forward(r.nav.HasNext())))
		if errors.Is(err, errBack) {
			return nil
		}
		if err != nil {
			return err
		}
		if line != "" {
			fmt.Fprintf(r.out, "unknown command %q\n", line)
			return nil
		}
	}

	r.advance()
	return nil
}

func (r *runner) printHeader(step *definition.Step) {
	heading := r.title
	if heading == "" {
		heading = step.ID
	}
	total := max(len(r.def.Reachable()), r.nav.Depth())

	fmt.Fprintf(r.out, "\n== %s (%s) ==\n", heading, r.labels.Position(r.nav.Depth(), total))
	if step.Description != "" {
		fmt.Fprintln(r.out, step.Description)
	}
	if r.validation != "" {
		for _, line := range strings.Split(r.validation, "\n") {
			fmt.Fprintf(r.out, "! %s\n", line)
		}
		r.validation = ""
	}
}

func (r *runner) askField(f definition.Field) error {
	for {
		line, err := r.ask(fieldPrompt(f, r.answers))
		if err != nil {
			return err
		}

		switch f.EffectiveKind() {
		case definition.KindConfirm:
			if line == "" {
				return nil
			}
			b, ok := parseConfirm(line)
			if !ok {
				fmt.Fprintln(r.out, "please answer y or n")
				continue
			}
			r.answers.SetFlag(f.Key, b)
			return nil

		case definition.KindSelect:
			if line == "" {
				return nil
			}
			choice, ok := pickOption(f.Options, line)
			if !ok {
				fmt.Fprintf(r.out, "choose one of: %s\n", strings.Join(f.Options, ", "))
				continue
			}
			r.answers.Set(f.Key, choice)
			return nil

		default:
			if line != "" {
				r.answers.Set(f.Key, line)
			}
			return nil
		}
	}
}

// ask prints prompt and returns the trimmed reply. Quit and back commands
// are handled here.
func (r *runner) ask(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	line := strings.TrimSpace(r.in.Text())
	switch line {
	case CommandQuit:
		return "", ErrCancelled
	case CommandBack:
		r.retreat()
		return "", errBack
	}
	return line, nil
}

func (r *runner) advance() {
	prev := r.title
	r.title = ""
	if out := r.nav.Advance(); !out.Moved() {
		r.title = prev
	}
}

func (r *runner) retreat() {
	prev := r.title
	r.title = ""
	if out := r.nav.Retreat(); !out.Moved() {
		r.title = prev
		fmt.Fprintln(r.out, "already at the first step")
	}
}

func fieldPrompt(f definition.Field, answers *definition.Answers) string {
	var b strings.Builder
	b.WriteString(f.DisplayLabel())

	switch f.EffectiveKind() {
	case definition.KindConfirm:
		if *answers.Flag(f.Key) {
			b.WriteString(" [Y/n]")
		} else {
			b.WriteString(" [y/N]")
		}
	case definition.KindSelect:
		fmt.Fprintf(&b, " (%s)", strings.Join(f.Options, "/"))
		if v := *answers.Value(f.Key); v != "" {
			fmt.Fprintf(&b, " [%s]", v)
		}
	default:
		if v := *answers.Value(f.Key); v != "" {
			fmt.Fprintf(&b, " [%s]", v)
		} else if f.Placeholder != "" {
			fmt.Fprintf(&b, " (%s)", f.Placeholder)
		}
	}

	b.WriteString(": ")
	return b.String()
}

func parseConfirm(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

// pickOption accepts an option by name or by its 1-based number.
func pickOption(options []string, s string) (string, bool) {
	if slices.Contains(options, s) {
		return s, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}
