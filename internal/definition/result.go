package definition

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/imamik/wizflow/pkg/navigator"
)

// Result is the document written when a wizard finishes.
type Result struct {
	RunID       string         `json:"runId"`
	Wizard      string         `json:"wizard"`
	CompletedAt time.Time      `json:"completedAt"`
	Path        []string       `json:"path"`
	Answers     map[string]any `json:"answers"`
}

// NewResult captures a finished run. Only answers of fields on the visited
// path are kept, so answers left behind on abandoned branches do not leak
// into the output.
func NewResult(d *Definition, path []navigator.StepID, answers *Answers, now time.Time) *Result {
	snapshot := answers.Snapshot()
	kept := make(map[string]any)
	steps := make([]string, 0, len(path))

	for _, id := range path {
		steps = append(steps, string(id))
		step, ok := d.StepFor(id)
		if !ok {
			continue
		}
		for _, f := range step.Fields {
			if v, ok := snapshot[f.Key]; ok {
				kept[f.Key] = v
			}
		}
	}

	return &Result{
		RunID:       uuid.NewString(),
		Wizard:      d.Name,
		CompletedAt: now.UTC(),
		Path:        steps,
		Answers:     kept,
	}
}

// Marshal encodes the result as YAML or JSON.
func (r *Result) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := sigsyaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w for results: %q", ErrUnsupportedFormat, format)
	}
}

// WriteResult writes the result to path in the given format.
func WriteResult(r *Result, path string, format Format) error {
	data, err := r.Marshal(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	return nil
}
