package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/wizflow/internal/definition"
)

var loadDefinitionUnchecked = definition.LoadWithoutValidation

// ErrInvalidWizard is returned when at least one wizard file has problems.
var ErrInvalidWizard = errors.New("invalid wizard")

// Validate checks each wizard file and prints its problems. Unreachable
// steps are warnings unless strict is set.
func Validate(paths []string, strict bool) error {
	failed := 0
	for _, path := range paths {
		if !validateFile(path, strict) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s) failed validation", ErrInvalidWizard, failed, len(paths))
	}
	return nil
}

func validateFile(path string, strict bool) bool {
	def, err := loadDefinitionUnchecked(path)
	if err != nil {
		printProblems(path, []error{err})
		return false
	}

	problems := splitJoined(def.Validate())

	unreachable := def.Unreachable()
	if strict {
		for _, id := range unreachable {
			problems = append(problems, fmt.Errorf("step %q is unreachable from %q", id, def.InitialStep()))
		}
		unreachable = nil
	}

	if len(problems) > 0 {
		printProblems(path, problems)
		return false
	}

	fmt.Printf("%s %s: %s, %d step(s)\n", okStyle.Render("✓"), path, def.Name, len(def.Steps))
	for _, id := range unreachable {
		fmt.Printf("  %s step %q is unreachable from %q\n", warnStyle.Render("!"), id, def.InitialStep())
	}
	return true
}

func printProblems(path string, problems []error) {
	fmt.Printf("%s %s: %d problem(s)\n", errorStyle.Render("✗"), path, len(problems))
	for _, p := range problems {
		for _, line := range strings.Split(p.Error(), "\n") {
			fmt.Printf("  - %s\n", line)
		}
	}
}

// splitJoined unpacks an errors.Join result.
func splitJoined(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
