package scale

import "errors"

var (
	// ErrUnknownScaleName indicates a scale name absent from the registry.
	ErrUnknownScaleName = errors.New("scale: unknown scale name")

	// ErrBadScale indicates a malformed offset sequence: empty, not
	// starting at 0, not strictly ascending, or outside [0,12).
	ErrBadScale = errors.New("scale: malformed pitch-class sequence")

	// ErrDuplicateScaleName indicates a registration that would shadow
	// an already-registered scale of a different shape.
	ErrDuplicateScaleName = errors.New("scale: duplicate scale name")

	// ErrRomanNumeral indicates a token that fails the roman-numeral
	// grammar, mixes numeral case, or uses an unrecognized modifier.
	ErrRomanNumeral = errors.New("scale: malformed roman numeral")

	// ErrMissingTonic indicates roman-numeral resolution on a Key with
	// no bound tonic.
	ErrMissingTonic = errors.New("scale: no tonic bound to key")

	// ErrDegreeRange indicates a scale degree beyond the scale's length.
	ErrDegreeRange = errors.New("scale: degree out of range")
)
