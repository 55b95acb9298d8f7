package chord

import (
	"fmt"

	"github.com/katalvlaran/tonica/pitch"
)

// inversionLetters maps chart inversion letters to inversion counts.
// "b" is skipped by convention: it collides with the flat symbol.
var inversionLetters = map[string]int{"a": 1, "c": 2, "d": 3}

// Chord is a ChordClass bound to a concrete root with an inversion
// k ∈ [0, Len). The chord references its class and root; derived
// interval and pitch slices are built fresh on every call, so a Chord
// is freely shareable.
type Chord struct {
	class     ChordClass
	root      pitch.Note
	inversion int
}

// New builds a Chord with an explicit inversion.
//
// Errors:
//   - ErrInvalidInversion — inversion outside [0, class.Len()).
func New(class ChordClass, root pitch.Note, inversion int) (Chord, error) {
	if inversion < 0 || inversion >= class.Len() {
		return Chord{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidInversion, inversion, class.Len())
	}
	return Chord{class: class, root: root, inversion: inversion}, nil
}

// FromPitches recognizes a concrete pitch set as a named chord using
// the built-in registry: the first pitch is the root, each remaining
// pitch contributes its interval from the root, and the resulting set
// is matched exactly. See Registry.Match to use a custom registry.
func FromPitches(notes ...pitch.Note) (Chord, error) {
	return Builtin().Match(notes...)
}

// Match is FromPitches against this registry.
//
// Errors:
//   - ErrEmptyChord         — no pitches given.
//   - ErrUnmatchedIntervals — the set matches no registered pattern.
func (r *Registry) Match(notes ...pitch.Note) (Chord, error) {
	if len(notes) == 0 {
		return Chord{}, ErrEmptyChord
	}
	ivs := make([]pitch.Interval, len(notes))
	for i, n := range notes {
		ivs[i] = pitch.Between(notes[0], n)
	}
	class, err := r.ByIntervals(ivs)
	if err != nil {
		return Chord{}, err
	}
	return class.At(notes[0]), nil
}

// Class reports the bound chord class.
func (c Chord) Class() ChordClass { return c.class }

// Root reports the bound root note.
func (c Chord) Root() pitch.Note { return c.root }

// Inversion reports the inversion count.
func (c Chord) Inversion() int { return c.inversion }

// Invert returns a copy at inversion k. Counts are cyclic: on a triad,
// Invert(3) is the root position again, which keeps the inversion cycle
// closed. Negative counts are rejected.
//
// Errors:
//   - ErrInvalidInversion — k < 0.
func (c Chord) Invert(k int) (Chord, error) {
	if k < 0 {
		return Chord{}, fmt.Errorf("%w: %d", ErrInvalidInversion, k)
	}
	c.inversion = k % c.class.Len()
	return c, nil
}

// InvertLetter applies a chart inversion letter: a=1, c=2, d=3.
//
// Errors:
//   - ErrInvalidInversion — unrecognized letter.
func (c Chord) InvertLetter(letter string) (Chord, error) {
	k, ok := inversionLetters[letter]
	if !ok {
		return Chord{}, fmt.Errorf("%w: letter %q", ErrInvalidInversion, letter)
	}
	return c.Invert(k)
}

// Intervals returns the class pattern rotated left by the inversion:
// a Major chord at inversion 1 yields [M3 P5 P1].
func (c Chord) Intervals() []pitch.Interval {
	return rotated(c.class.intervals, c.inversion)
}

// Pitches returns the root transposed by each interval, rotated left by
// the inversion; element 0 is the sounding bass of the inversion.
func (c Chord) Pitches() []pitch.Note {
	notes := make([]pitch.Note, len(c.class.intervals))
	for i, iv := range c.class.intervals {
		notes[i] = c.root.Transpose(iv)
	}
	return rotated(notes, c.inversion)
}

// IntervalClasses returns the interval classes (ints in [0,12)) in
// sounding order — the form diagram renderers consume.
func (c Chord) IntervalClasses() []int {
	ivs := c.Intervals()
	out := make([]int, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Class().Semitones()
	}
	return out
}

// Name renders root + class name: "E Major", "D♯ Dim".
func (c Chord) Name() string {
	return c.root.String() + " " + c.class.name
}

// FullName renders root + unabbreviated class name: "D♯ Diminished".
func (c Chord) FullName() string {
	return c.root.String() + " " + c.class.fullName
}

// Symbol renders the compact chord symbol using the preferred
// abbreviation: "Emaj", "C♯min7".
func (c Chord) Symbol() string {
	return c.root.String() + c.class.Abbrev()
}

// String is Name.
func (c Chord) String() string { return c.Name() }

// rotated returns a new slice cyclically rotated left by k; inputs are
// never mutated.
func rotated[T any](in []T, k int) []T {
	n := len(in)
	out := make([]T, n)
	for i := range in {
		out[i] = in[(i+k)%n]
	}
	return out
}
