package pitch

import "fmt"

// sharpNames is the fixed 12-entry table used when printing; index is
// the normalized pitch-class value.
var sharpNames = [12]string{
	"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B",
}

// flatNames is the enharmonic flat spelling of the same 12 classes.
var flatNames = [12]string{
	"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B",
}

// letterSemitones maps a natural letter (upper case) to its sharp-name
// index: the diatonic C-major positions.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// accidentalOffsets maps each accidental glyph to its semitone shift.
// Multiple accidentals on one name sum in order ("C𝄪#" = C+3).
var accidentalOffsets = map[rune]int{
	'#': +1, '♯': +1,
	'b': -1, '♭': -1,
	'𝄪': +2, '𝄫': -2,
}

// PitchClass is a pitch modulo the octave: an integer normalized into
// [0,12). Two enharmonic spellings (D♯/E♭) map to the same value.
type PitchClass int

// NewPitchClass normalizes any integer into [0,12). Normalization is
// idempotent: NewPitchClass(int(pc)) == pc for every PitchClass pc.
func NewPitchClass(n int) PitchClass {
	return PitchClass(((n % 12) + 12) % 12)
}

// ParsePitchClass parses an octave-free spelling like "E", "f♯" or
// "Bbb". The letter is case-insensitive; accidentals sum in order.
//
// Errors:
//   - ErrNotation — input is not <letter A-G><accidentals*>.
func ParsePitchClass(s string) (PitchClass, error) {
	n, err := parseClassValue(s)
	if err != nil {
		return 0, err
	}
	return NewPitchClass(n), nil
}

// parseClassValue parses the letter+accidental grammar without
// normalizing, so octave math can be applied first ("Cb4" must become
// B3, not B4). Helmholtz and scientific parsing both build on it.
func parseClassValue(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: expected pitch class, got empty input", ErrNotation)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	base, ok := letterSemitones[letter]
	if !ok {
		return 0, fmt.Errorf("%w: expected letter A-G in %q", ErrNotation, s)
	}
	for _, r := range s[1:] {
		off, ok := accidentalOffsets[r]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected accidental %q in %q", ErrNotation, r, s)
		}
		base += off
	}
	return base, nil
}

// Semitones reports the normalized value in [0,12).
func (pc PitchClass) Semitones() int { return int(pc) }

// Class returns the receiver; a PitchClass is already octave-free.
func (pc PitchClass) Class() PitchClass { return pc }

// Transpose shifts the class by iv, re-normalizing into [0,12).
func (pc PitchClass) Transpose(iv Interval) Note {
	return NewPitchClass(int(pc) + iv.semitones)
}

// AsPitch anchors the class in a concrete octave, producing the
// absolute Pitch (MIDI numbering: AsPitch(4) on class 0 is C4 = 60).
func (pc PitchClass) AsPitch(octave int) Pitch {
	return NewPitch(int(pc) + 12*(octave+1))
}

// String renders the sharp spelling ("F♯"). Use FlatName for the
// enharmonic flat spelling.
func (pc PitchClass) String() string { return sharpNames[int(pc)%12] }

// FlatName renders the flat spelling ("G♭").
func (pc PitchClass) FlatName() string { return flatNames[int(pc)%12] }
