package pitch

import "errors"

var (
	// ErrNotation indicates input that does not match the expected
	// scientific, Helmholtz, or pitch-class grammar. Wrapped errors name
	// the notation kind that was expected.
	ErrNotation = errors.New("pitch: malformed notation")

	// ErrUnknownInterval indicates an interval shorthand that is not in
	// the known name table (e.g. "Q3").
	ErrUnknownInterval = errors.New("pitch: unknown interval shorthand")
)
