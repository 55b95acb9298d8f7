package scale

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tonica/pitch"
)

// Scale is an immutable named ascending sequence of pitch-class offsets
// from an unspecified tonic (first offset always 0). A scale derived by
// rotation keeps a back-reference to its parent; a scale built directly
// has a nil parent. Modes are computed once at construction: exactly
// one per offset.
type Scale struct {
	name    string
	offsets []int
	parent  *Scale
	modes   []*Scale
}

// NewScale validates offsets and derives the modes. modeNames, when
// supplied, must carry one name per offset and names the derived modes
// ("Ionian" .. "Locrian" for the diatonic major); pass nil to leave
// modes with generated names.
//
// Errors:
//   - ErrBadScale — offsets empty, not starting at 0, not strictly
//     ascending within [0,12), or modeNames of the wrong length.
func NewScale(name string, offsets []int, modeNames []string) (*Scale, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrBadScale)
	}
	if len(offsets) == 0 || offsets[0] != 0 {
		return nil, fmt.Errorf("%w: %s must start at 0", ErrBadScale, name)
	}
	for i, off := range offsets {
		if off < 0 || off > 11 {
			return nil, fmt.Errorf("%w: %s offset %d outside [0,12)", ErrBadScale, name, off)
		}
		if i > 0 && off <= offsets[i-1] {
			return nil, fmt.Errorf("%w: %s offsets must ascend strictly", ErrBadScale, name)
		}
	}
	if modeNames != nil && len(modeNames) != len(offsets) {
		return nil, fmt.Errorf("%w: %s has %d offsets but %d mode names", ErrBadScale, name, len(offsets), len(modeNames))
	}

	s := &Scale{name: name, offsets: append([]int(nil), offsets...)}
	s.modes = make([]*Scale, len(offsets))
	for i := range offsets {
		modeName := fmt.Sprintf("%s mode %d", name, i+1)
		if modeNames != nil {
			modeName = modeNames[i]
		}
		s.modes[i] = &Scale{
			name:    modeName,
			offsets: rotateToZero(offsets, i),
			parent:  s,
		}
	}
	return s, nil
}

// rotateToZero rotates offsets left by k, subtracts the new first
// element and normalizes mod 12, so the derived mode starts at 0. The
// input is never mutated.
func rotateToZero(offsets []int, k int) []int {
	n := len(offsets)
	out := make([]int, n)
	for i := range offsets {
		out[i] = ((offsets[(i+k)%n]-offsets[k])%12 + 12) % 12
	}
	return out
}

// Name reports the scale name.
func (s *Scale) Name() string { return s.name }

// PitchClasses returns a copy of the offset sequence.
func (s *Scale) PitchClasses() []int {
	return append([]int(nil), s.offsets...)
}

// Intervals returns the offsets as Intervals from the tonic.
func (s *Scale) Intervals() []pitch.Interval {
	ivs := make([]pitch.Interval, len(s.offsets))
	for i, off := range s.offsets {
		ivs[i] = pitch.NewInterval(off)
	}
	return ivs
}

// Len reports the number of pitch classes.
func (s *Scale) Len() int { return len(s.offsets) }

// Parent reports the scale this one was derived from, or nil.
func (s *Scale) Parent() *Scale { return s.parent }

// Modes returns the derived modes; index 0 is the scale's own rotation
// (identical offsets) and the slice always has Len() entries.
func (s *Scale) Modes() []*Scale {
	return append([]*Scale(nil), s.modes...)
}

// Mode returns the i-th derived mode (0-based).
//
// Errors:
//   - ErrDegreeRange — i outside [0, Len()).
func (s *Scale) Mode(i int) (*Scale, error) {
	if i < 0 || i >= len(s.modes) {
		return nil, fmt.Errorf("%w: mode %d of %d", ErrDegreeRange, i, len(s.modes))
	}
	return s.modes[i], nil
}

// At binds the scale to a concrete tonic, producing a Key.
func (s *Scale) At(tonic pitch.Note) Key {
	return Key{scale: s, tonic: tonic}
}

// String renders the name and offsets: "Diatonic Major [0 2 4 5 7 9 11]".
func (s *Scale) String() string {
	parts := make([]string, len(s.offsets))
	for i, off := range s.offsets {
		parts[i] = fmt.Sprintf("%d", off)
	}
	return fmt.Sprintf("%s [%s]", s.name, strings.Join(parts, " "))
}
