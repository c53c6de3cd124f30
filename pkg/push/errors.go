package push

import "errors"

// Validation errors returned by the payload builders. Builders wrap these
// with field context, so match them with errors.Is.
var (
	// ErrInvalidType is returned when a value's type is outside the field's accepted set.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a value has an accepted type but fails a content constraint.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidChoice is returned when an enumerated or mutually exclusive choice is violated.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrEmptyValue is returned when a supplied collection is empty where content is required.
	ErrEmptyValue = errors.New("empty value")

	// ErrEmptyPayload is returned when the assembled document would carry no recognized fields.
	ErrEmptyPayload = errors.New("payload may not be empty")

	// ErrMissingAttribute is returned when a mandatory attribute was omitted entirely.
	ErrMissingAttribute = errors.New("missing required attribute")
)
