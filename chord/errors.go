package chord

import "errors"

var (
	// ErrUnknownChordName indicates a name, full name, or abbreviation
	// that is not present in the registry.
	ErrUnknownChordName = errors.New("chord: unknown chord name")

	// ErrUnmatchedIntervals indicates an interval set whose fingerprint
	// corresponds to no registered chord class.
	ErrUnmatchedIntervals = errors.New("chord: no matching chord class")

	// ErrInvalidInversion indicates an inversion index or letter outside
	// the valid range for the chord.
	ErrInvalidInversion = errors.New("chord: invalid inversion")

	// ErrBadPattern indicates a malformed ChordClass definition (empty
	// name, no abbreviations, or a first interval other than 0).
	ErrBadPattern = errors.New("chord: malformed chord class pattern")

	// ErrDuplicateChordName indicates a registration that would shadow
	// an already-registered alias of a different class.
	ErrDuplicateChordName = errors.New("chord: duplicate chord name key")

	// ErrDuplicateFingerprint indicates a registration whose normalized
	// interval fingerprint is already taken by a different class.
	ErrDuplicateFingerprint = errors.New("chord: duplicate interval fingerprint")

	// ErrEmptyChord indicates a pitch set with no pitches.
	ErrEmptyChord = errors.New("chord: at least one pitch required")
)
