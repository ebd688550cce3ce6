package navigator

import "errors"

// Configuration errors returned by New.
var (
	ErrNoInitialState = errors.New("navigator: initial state is required")
	ErrEmptyTarget    = errors.New("navigator: next-step rule targets an empty step id")
)
