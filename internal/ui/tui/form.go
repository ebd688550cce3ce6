package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/wizflow/internal/definition"
)

// buildForm returns a huh form for the step's fields bound to answers, or
// nil for a step without fields.
func buildForm(step *definition.Step, answers *definition.Answers, width int) *huh.Form {
	if len(step.Fields) == 0 {
		return nil
	}

	fields := make([]huh.Field, 0, len(step.Fields))
	for _, f := range step.Fields {
		fields = append(fields, buildField(f, answers))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithTheme(huh.ThemeCharm())
	if width > 0 {
		form = form.WithWidth(width)
	}
	return form
}

func buildField(f definition.Field, answers *definition.Answers) huh.Field {
	switch f.EffectiveKind() {
	case definition.KindSelect:
		return huh.NewSelect[string]().
			Key(f.Key).
			Title(f.DisplayLabel()).
			Description(f.Description).
			Options(huh.NewOptions(f.Options...)...).
			Value(answers.Value(f.Key))
	case definition.KindConfirm:
		return huh.NewConfirm().
			Key(f.Key).
			Title(f.DisplayLabel()).
			Description(f.Description).
			Value(answers.Flag(f.Key))
	case definition.KindText:
		return huh.NewText().
			Key(f.Key).
			Title(f.DisplayLabel()).
			Description(f.Description).
			Placeholder(f.Placeholder).
			Value(answers.Value(f.Key))
	default:
		return huh.NewInput().
			Key(f.Key).
			Title(f.DisplayLabel()).
			Description(f.Description).
			Placeholder(f.Placeholder).
			Value(answers.Value(f.Key))
	}
}
