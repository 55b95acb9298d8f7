package pitch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// helmholtzReferenceOctave anchors Helmholtz notation: a bare
// lower-case letter sits in this octave, a bare upper-case letter one
// octave below it.
const helmholtzReferenceOctave = 4

var (
	scientificRe = regexp.MustCompile(`^([A-Ga-g][#♯b♭𝄪𝄫]*)([0-9]+)$`)
	helmholtzRe  = regexp.MustCompile(`^([A-Ga-g][#♯b♭𝄪𝄫]*)(,*)('*)$`)
)

// Pitch is an absolute pitch: semitones above the MIDI reference
// (C4 = 60), plus an optional display spelling preserved from parsing.
type Pitch struct {
	value int
	name  string
}

// NewPitch builds a Pitch from an absolute semitone value. It always
// succeeds; the canonical sharp-table spelling is used for display.
func NewPitch(value int) Pitch { return Pitch{value: value} }

// ParsePitch parses either notation, selected by the presence of a
// digit: scientific ("E4", "F♯3") when the input contains one,
// Helmholtz ("c'", "C,", "f♯") otherwise. The original spelling is
// preserved and round-trips to the same numeric value.
//
// Errors:
//   - ErrNotation — input matches neither grammar; the wrapped message
//     names the notation kind that was expected.
func ParsePitch(s string) (Pitch, error) {
	if strings.ContainsAny(s, "0123456789") {
		return parseScientific(s)
	}
	return parseHelmholtz(s)
}

// parseScientific handles <letter><accidentals*><octave digits>.
// Value = class value + 12×(1+octave), so "C4" is 60 and "E4" is 64.
func parseScientific(s string) (Pitch, error) {
	m := scientificRe.FindStringSubmatch(s)
	if m == nil {
		return Pitch{}, fmt.Errorf("%w: expected scientific notation, got %q", ErrNotation, s)
	}
	class, err := parseClassValue(m[1])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrNotation, s)
	}
	return Pitch{value: class + 12*(1+octave), name: s}, nil
}

// parseHelmholtz handles <letter[case]><accidentals*><commas*><apostrophes*>.
// Lower case sits in the reference octave, upper case one below; each
// comma lowers and each apostrophe raises the octave by one.
func parseHelmholtz(s string) (Pitch, error) {
	m := helmholtzRe.FindStringSubmatch(s)
	if m == nil {
		return Pitch{}, fmt.Errorf("%w: expected Helmholtz notation, got %q", ErrNotation, s)
	}
	class, err := parseClassValue(m[1])
	if err != nil {
		return Pitch{}, err
	}
	octave := helmholtzReferenceOctave
	if first := m[1][0]; first >= 'A' && first <= 'G' {
		octave--
	}
	octave += len(m[3]) - len(m[2])
	return Pitch{value: class + 12*(1+octave), name: s}, nil
}

// Semitones reports the absolute value (MIDI numbering).
func (p Pitch) Semitones() int { return p.value }

// Octave reports the scientific octave number: floor(value/12) − 1.
func (p Pitch) Octave() int {
	v := p.value
	if v < 0 {
		v -= 11
	}
	return v/12 - 1
}

// Class reduces the pitch modulo the octave.
func (p Pitch) Class() PitchClass { return NewPitchClass(p.value) }

// Transpose shifts the pitch by iv. The parsed spelling, if any, is
// dropped: the result prints canonically.
func (p Pitch) Transpose(iv Interval) Note {
	return Pitch{value: p.value + iv.semitones}
}

// MIDI reports the value as a MIDI note number, or an error when the
// pitch falls outside the 0..127 MIDI range.
func (p Pitch) MIDI() (uint8, error) {
	if p.value < 0 || p.value > 127 {
		return 0, fmt.Errorf("pitch: value %d outside MIDI range 0..127", p.value)
	}
	return uint8(p.value), nil
}

// String renders the preserved spelling when the pitch was parsed, and
// the canonical scientific spelling (sharp table + octave) otherwise.
func (p Pitch) String() string {
	if p.name != "" {
		return p.name
	}
	return p.Class().String() + strconv.Itoa(p.Octave())
}

// Helmholtz renders the pitch in Helmholtz notation: "c'" for C5,
// "C," for C2.
func (p Pitch) Helmholtz() string {
	letter := p.Class().String()
	octave := p.Octave()
	if octave < helmholtzReferenceOctave {
		letter = strings.ToUpper(letter)
		return letter + strings.Repeat(",", helmholtzReferenceOctave-1-octave)
	}
	letter = strings.ToLower(letter)
	return letter + strings.Repeat("'", octave-helmholtzReferenceOctave)
}
