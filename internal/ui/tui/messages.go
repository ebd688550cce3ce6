// Package tui provides a Bubble Tea binding that renders a wizard one step
// at a time and drives its navigator from key presses.
package tui

import "errors"

// ErrCancelled is returned by Run when the user quits before finishing.
var ErrCancelled = errors.New("wizard cancelled")

// Key bindings.
const (
	keyBack = "ctrl+b"
	keyQuit = "ctrl+c"
	keyNext = "enter"
)
