package tuix

import "errors"

// Configuration errors fail fast at the call that introduced the bad
// input. Callers wrap these with fmt.Errorf("...: %w", ...) to attach
// the offending id, key or value; match with errors.Is.
var (
	ErrUnknownWidget         = errors.New("unknown widget id")
	ErrDuplicateWidget       = errors.New("widget id already exists")
	ErrUnknownKind           = errors.New("unknown widget kind")
	ErrUnknownProperty       = errors.New("unknown property")
	ErrPropertyNotApplicable = errors.New("property not applicable to widget kind")

	ErrUnknownPreset      = errors.New("unknown style preset")
	ErrUnknownPromptType  = errors.New("unknown prompt type")
	ErrUnknownStyleKey    = errors.New("unknown style key")
	ErrUnknownStyleOption = errors.New("unknown style option")
	ErrInvalidStyleValue  = errors.New("invalid style value")
	ErrSchemaMismatch     = errors.New("style config keys do not match the canonical key set")

	ErrNoOpUpdate           = errors.New("no dimension field supplied")
	ErrInvalidModeForMargin = errors.New("cannot set margin while axis mode is centered")
	ErrOutOfRange           = errors.New("value out of range")
	ErrInvalidAxis          = errors.New("unknown margin axis")
	ErrInvalidMode          = errors.New("unknown margin mode")
)

// Capability errors are unimplemented features reported as fatal at
// render time.
var (
	ErrEmptyRegistry          = errors.New("at least one widget must be registered")
	ErrMultiWidgetUnsupported = errors.New("multi-widget rendering is not supported")
	ErrUnsupportedKind        = errors.New("only choice widgets are renderable")
	ErrEmptyChoices           = errors.New("choices list is empty")
)
