package pitch

// Note is the capability contract shared by the two concrete pitch-like
// variants, Pitch and PitchClass. Components that accept "a root" (a
// chord root, a key tonic) are written against Note and work with either
// variant; Transpose returns the same concrete variant it was called on.
type Note interface {
	// Semitones reports the numeric value: absolute (MIDI-style) for a
	// Pitch, normalized into [0,12) for a PitchClass.
	Semitones() int

	// Class reduces the value modulo the octave.
	Class() PitchClass

	// Transpose shifts by the given interval, preserving the variant.
	Transpose(iv Interval) Note

	// String renders the canonical spelling (sharp-name table).
	String() string
}
