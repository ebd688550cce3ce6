package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/wizflow/internal/definition"
	"github.com/imamik/wizflow/internal/labels"
	"github.com/imamik/wizflow/internal/logging"
	"github.com/imamik/wizflow/internal/metrics"
	"github.com/imamik/wizflow/internal/settings"
	"github.com/imamik/wizflow/internal/ui/prompt"
	"github.com/imamik/wizflow/internal/ui/tui"
	"github.com/imamik/wizflow/pkg/navigator"
)

// RunOptions holds the flags of the run command. Empty values fall back to
// the user settings.
type RunOptions struct {
	DefinitionPath string
	ConfigPath     string
	Output         string
	Format         string
	Locale         string
	MetricsFile    string
	Plain          bool
	AltScreen      bool
	// AltScreenSet reports whether --alt-screen was given explicitly.
	AltScreenSet bool
	Verbose      bool
}

// Factory function variables for run - can be replaced in tests.
var (
	loadSettings   = settings.Load
	loadDefinition = definition.Load

	// isInteractiveTTY decides between the terminal UI and line prompts.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	runTUI = tui.Run

	runPrompt = func(ctx context.Context, def *definition.Definition, answers *definition.Answers, opts prompt.Options) ([]navigator.StepID, error) {
		return prompt.Run(ctx, def, answers, os.Stdin, os.Stdout, opts)
	}

	writeResult  = definition.WriteResult
	writeMetrics = metrics.WriteTextfile

	logOutput io.Writer = os.Stderr
	now                 = time.Now
)

// ErrCancelled is returned when the user quits a wizard.
var ErrCancelled = errors.New("wizard cancelled, no result written")

// Run loads a wizard, runs it and writes the result document.
func Run(ctx context.Context, opts RunOptions) error {
	s, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyRunFlags(&s, opts)

	level := s.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log := logging.New(logOutput, level).WithName("wizflow")

	if s.Metrics && s.MetricsFile == "" {
		log.Info("metrics enabled without metrics_file, not recording")
		s.Metrics = false
	}

	def, err := loadDefinition(opts.DefinitionPath)
	if err != nil {
		return fmt.Errorf("failed to load wizard: %w", err)
	}

	format, err := resultFormat(opts.Format, s)
	if err != nil {
		return err
	}

	l, err := labels.New(s.Locale)
	if err != nil {
		return fmt.Errorf("failed to load labels: %w", err)
	}

	navOpts := []navigator.Option{navigator.WithLogger(log.WithName("navigator").WithValues("wizard", def.Name))}
	if s.Metrics {
		navOpts = append(navOpts, navigator.WithObserver(metrics.NewRecorder(def.Name, true)))
	}

	answers := definition.NewAnswersFor(def)
	path, err := runWizard(ctx, log, def, answers, l, s, opts.Plain, navOpts)
	if errors.Is(err, tui.ErrCancelled) || errors.Is(err, prompt.ErrCancelled) {
		return ErrCancelled
	}
	if err != nil {
		return fmt.Errorf("failed to run wizard %s: %w", def.Name, err)
	}

	result := definition.NewResult(def, path, answers, now())
	if err := writeResult(result, s.Output, format); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if s.Metrics {
		if err := writeMetrics(s.MetricsFile); err != nil {
			return err
		}
		log.V(1).Info("metrics written", "path", s.MetricsFile)
	}

	printRunSuccess(def, result, s.Output)
	return nil
}

func runWizard(ctx context.Context, log logr.Logger, def *definition.Definition, answers *definition.Answers, l *labels.Labels, s settings.Settings, plain bool, navOpts []navigator.Option) ([]navigator.StepID, error) {
	if !plain && isInteractiveTTY() {
		log.V(1).Info("starting terminal UI", "altScreen", s.AltScreen)
		return runTUI(ctx, def, answers, tui.Options{
			Labels:     l,
			AltScreen:  s.AltScreen,
			Navigation: navOpts,
		})
	}

	log.V(1).Info("starting line prompts")
	return runPrompt(ctx, def, answers, prompt.Options{
		Labels:     l,
		Navigation: navOpts,
	})
}

// applyRunFlags overlays explicitly given flags on the settings.
func applyRunFlags(s *settings.Settings, opts RunOptions) {
	if opts.Output != "" {
		s.Output = opts.Output
	}
	if opts.Locale != "" {
		s.Locale = opts.Locale
	}
	if opts.AltScreenSet {
		s.AltScreen = opts.AltScreen
	}
	if opts.MetricsFile != "" {
		s.Metrics = true
		s.MetricsFile = opts.MetricsFile
	}
}

// resultFormat picks the result format: the --format flag, then the output
// file extension, then the settings default.
func resultFormat(flag string, s settings.Settings) (definition.Format, error) {
	if flag != "" {
		return checkResultFormat(flag)
	}
	if f, err := definition.FormatFromPath(s.Output); err == nil && f != definition.FormatTOML {
		return f, nil
	}
	return checkResultFormat(s.Format)
}

func checkResultFormat(name string) (definition.Format, error) {
	switch f := definition.Format(strings.ToLower(name)); f {
	case definition.FormatYAML, definition.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w for results: %q (use yaml or json)", definition.ErrUnsupportedFormat, name)
	}
}

func printRunSuccess(def *definition.Definition, result *definition.Result, outputPath string) {
	fmt.Println()
	fmt.Println("Wizard complete!")
	fmt.Println()
	fmt.Printf("  Wizard: %s\n", def.Name)
	fmt.Printf("  Steps:  %s\n", strings.Join(result.Path, " → "))
	fmt.Printf("  File:   %s\n", outputPath)
	fmt.Printf("  Run ID: %s\n", result.RunID)
	fmt.Println()
}
