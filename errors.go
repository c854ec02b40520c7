package helix

import "errors"

// Sentinel errors for compile-time failures. Every failure is fatal to
// the single definition being compiled; nothing is retried.
var (
	ErrNotDefinition = errors.New("helix: form is not a component definition")
	ErrNotMap        = errors.New("helix: expected a literal property mapping")
	ErrDuplicateRest = errors.New("helix: duplicate rest marker in property mapping")
	ErrBadBinding    = errors.New("helix: malformed props binding")
	ErrBadOptions    = errors.New("helix: malformed options map")
	ErrNoRender      = errors.New("helix: component must define a render method")
	ErrBadMember     = errors.New("helix: malformed class member")
	ErrBadHookName   = errors.New("helix: hook name must start with use-")
)

// IsShapeError checks if err is a malformed-form error.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrNotMap) ||
		errors.Is(err, ErrDuplicateRest) ||
		errors.Is(err, ErrBadBinding) ||
		errors.Is(err, ErrBadOptions) ||
		errors.Is(err, ErrBadMember)
}

// IsDefinitionError checks if err rejected the definition as a whole
// rather than one of its forms.
func IsDefinitionError(err error) bool {
	return errors.Is(err, ErrNotDefinition) ||
		errors.Is(err, ErrNoRender) ||
		errors.Is(err, ErrBadHookName)
}
