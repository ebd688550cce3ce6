package definition

import "errors"

// Validation errors for wizard documents.
var (
	ErrNameRequired      = errors.New("wizard name is required")
	ErrNoSteps           = errors.New("wizard has no steps")
	ErrStepIDRequired    = errors.New("step id is required")
	ErrDuplicateStep     = errors.New("duplicate step id")
	ErrUnknownStep       = errors.New("unknown step")
	ErrFieldKeyRequired  = errors.New("field key is required")
	ErrDuplicateField    = errors.New("duplicate field key")
	ErrUnknownFieldKind  = errors.New("unknown field kind")
	ErrNoOptions         = errors.New("select field has no options")
	ErrInvalidDefault    = errors.New("default is not one of the options")
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrEmptyCondition    = errors.New("branch condition has no clauses")
	ErrUnknownField      = errors.New("condition references unknown field")
	ErrUnsupportedFormat = errors.New("unsupported definition format")
)
