// Package labels localizes the navigation labels shown by wizard bindings.
package labels

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	msgNext         = &i18n.Message{ID: "Next", Other: "Next"}
	msgFinish       = &i18n.Message{ID: "Finish", Other: "Finish"}
	msgBack         = &i18n.Message{ID: "Back", Other: "Back"}
	msgQuit         = &i18n.Message{ID: "Quit", Other: "Quit"}
	msgStepPosition = &i18n.Message{ID: "StepPosition", Other: "Step {{.Current}} of {{.Total}}"}
)

// Labels resolves navigation labels for one locale.
type Labels struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		data, err := localeFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", p, err)
		}
	}

	return bundle, nil
}

// New returns labels for locale, a BCP 47 tag such as "de" or "en-GB".
// Unknown or malformed locales fall back to English.
func New(locale string) (*Labels, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	matched, _, _ := matcher.Match(tag)
	base, _ := matched.Base()

	return &Labels{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       language.Make(base.String()),
	}, nil
}

// English returns labels that never fail to load.
func English() *Labels {
	l, err := New("en")
	if err != nil {
		return &Labels{tag: language.English}
	}
	return l
}

// Language returns the language the labels resolved to.
func (l *Labels) Language() language.Tag {
	return l.tag
}

// Next is the label of the forward control when a next step exists.
func (l *Labels) Next() string { return l.localize(msgNext, nil) }

// Finish is the label of the forward control on a terminal step.
func (l *Labels) Finish() string { return l.localize(msgFinish, nil) }

// Back is the label of the backward control.
func (l *Labels) Back() string { return l.localize(msgBack, nil) }

// Quit is the label of the cancel control.
func (l *Labels) Quit() string { return l.localize(msgQuit, nil) }

// Forward picks Next or Finish.
func (l *Labels) Forward(hasNext bool) string {
	if hasNext {
		return l.Next()
	}
	return l.Finish()
}

// Position renders "Step 2 of 5".
func (l *Labels) Position(current, total int) string {
	return l.localize(msgStepPosition, map[string]any{
		"Current": current,
		"Total":   total,
	})
}

func (l *Labels) localize(msg *i18n.Message, data map[string]any) string {
	if l.localizer == nil {
		return msg.Other
	}
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil {
		return msg.Other
	}
	return s
}
