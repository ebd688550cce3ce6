package definition

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/agnivade/levenshtein"
)

// Validate checks the document and returns every problem found, joined.
func (d *Definition) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if len(d.Steps) == 0 {
		errs = append(errs, ErrNoSteps)
	}

	ids := make([]string, 0, len(d.Steps))
	seen := make(map[string]bool, len(d.Steps))
	fields := make(map[string]bool)

	for i, step := range d.Steps {
		if step.ID == "" {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, ErrStepIDRequired))
			continue
		}
		if seen[step.ID] {
			errs = append(errs, fmt.Errorf("step %q: %w", step.ID, ErrDuplicateStep))
			continue
		}
		seen[step.ID] = true
		ids = append(ids, step.ID)

		for _, f := range step.Fields {
			if f.Key != "" && fields[f.Key] {
				errs = append(errs, fmt.Errorf("step %q: field %q: %w", step.ID, f.Key, ErrDuplicateField))
				continue
			}
			if f.Key != "" {
				fields[f.Key] = true
			}
			if err := validateField(f); err != nil {
				errs = append(errs, fmt.Errorf("step %q: %w", step.ID, err))
			}
		}
	}

	if d.Initial != "" && !seen[d.Initial] {
		errs = append(errs, fmt.Errorf("initial: %w", unknownStep(d.Initial, ids)))
	}

	for _, step := range d.Steps {
		if step.Next != "" && !seen[step.Next] {
			errs = append(errs, fmt.Errorf("step %q: next: %w", step.ID, unknownStep(step.Next, ids)))
		}
		for j, b := range step.Branches {
			if b.Goto == "" || !seen[b.Goto] {
				errs = append(errs, fmt.Errorf("step %q: branch %d: %w", step.ID, j+1, unknownStep(b.Goto, ids)))
			}
			if b.When.empty() {
				errs = append(errs, fmt.Errorf("step %q: branch %d: %w", step.ID, j+1, ErrEmptyCondition))
			}
			if !fields[b.When.Field] {
				errs = append(errs, fmt.Errorf("step %q: branch %d: %w %q", step.ID, j+1, ErrUnknownField, b.When.Field))
			}
		}
	}

	return errors.Join(errs...)
}

func validateField(f Field) error {
	if f.Key == "" {
		return ErrFieldKeyRequired
	}

	switch f.EffectiveKind() {
	case KindInput, KindText, KindConfirm:
	case KindSelect:
		if len(f.Options) == 0 {
			return fmt.Errorf("field %q: %w", f.Key, ErrNoOptions)
		}
		if f.Default != "" && !slices.Contains(f.Options, f.Default) {
			return fmt.Errorf("field %q: %w: %q", f.Key, ErrInvalidDefault, f.Default)
		}
	default:
		return fmt.Errorf("field %q: %w %q", f.Key, ErrUnknownFieldKind, f.Kind)
	}

	if f.Pattern != "" {
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return fmt.Errorf("field %q: %w: %w", f.Key, ErrInvalidPattern, err)
		}
	}

	return nil
}

// unknownStep builds an ErrUnknownStep, suggesting the closest known id.
func unknownStep(id string, known []string) error {
	if s := suggest(id, known); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownStep, id, s)
	}
	return fmt.Errorf("%w %q", ErrUnknownStep, id)
}

// suggest returns the known id closest to id, if it is close enough to be
// a plausible typo.
func suggest(id string, known []string) string {
	if id == "" {
		return ""
	}

	best, bestDist := "", -1
	for _, k := range known {
		d := levenshtein.ComputeDistance(id, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}

	if bestDist < 0 || bestDist > max(2, len(id)/3) {
		return ""
	}
	return best
}
