package definition

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imamik/wizflow/pkg/navigator"
)

func TestNewResult(t *testing.T) {
	d, answers := loadSignup(t)
	answers.Set("username", "ada")
	answers.Set("card", "4111111111111111") // left on an abandoned billing branch
	answers.SetFlag("accept", true)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	r := NewResult(d, []navigator.StepID{"account", "terms"}, answers, now)

	_, err := uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "signup", r.Wizard)
	assert.Equal(t, now.UTC(), r.CompletedAt)
	assert.Equal(t, []string{"account", "terms"}, r.Path)
	assert.Equal(t, map[string]any{
		"username": "ada",
		"plan":     "free",
		"accept":   true,
	}, r.Answers)
}

func TestResultMarshal(t *testing.T) {
	r := &Result{
		RunID:       "run-1",
		Wizard:      "signup",
		CompletedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Path:        []string{"account"},
		Answers:     map[string]any{"username": "ada"},
	}

	t.Run("yaml", func(t *testing.T) {
		data, err := r.Marshal(FormatYAML)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, "run-1", decoded["runId"])
		assert.Equal(t, "signup", decoded["wizard"])
		assert.Equal(t, map[string]any{"username": "ada"}, decoded["answers"])
	})

	t.Run("json", func(t *testing.T) {
		data, err := r.Marshal(FormatJSON)
		require.NoError(t, err)

		var decoded Result
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, *r, decoded)
	})

	t.Run("toml is not a result format", func(t *testing.T) {
		_, err := r.Marshal(FormatTOML)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestWriteResult(t *testing.T) {
	r := &Result{RunID: "run-1", Wizard: "signup"}
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, WriteResult(r, path, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"runId": "run-1"`)
}
