package pitch

import (
	"fmt"
	"strconv"
)

// intervalNames maps every accepted shorthand to its semitone count.
// Enharmonic shorthands (A4/d5, A5/m6, ...) share a count by design.
var intervalNames = map[string]int{
	"P1": 0, "A1": 1,
	"m2": 1, "M2": 2, "A2": 3,
	"m3": 3, "M3": 4,
	"d4": 4, "P4": 5, "A4": 6,
	"d5": 6, "P5": 7, "A5": 8,
	"m6": 8, "M6": 9,
	"d7": 9, "m7": 10, "M7": 11,
	"P8": 12,
}

// canonicalIntervalNames holds the preferred shorthand per semitone
// count in [0,12]; it is the inverse used when printing.
var canonicalIntervalNames = [13]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "A4", "P5", "m6", "M6", "m7", "M7", "P8",
}

// Interval is a signed semitone distance between two pitches or pitch
// classes. No modular reduction is applied to the Interval itself;
// reduction happens only when the interval is interpreted as a pitch
// class (see Class).
type Interval struct {
	semitones int
	name      string
}

// NewInterval builds an Interval from a semitone count. It always
// succeeds; counts may be negative or exceed an octave. When the count
// has a canonical shorthand ("P5" for 7) the name is attached.
func NewInterval(n int) Interval {
	iv := Interval{semitones: n}
	if n >= 0 && n < len(canonicalIntervalNames) {
		iv.name = canonicalIntervalNames[n]
	}
	return iv
}

// ParseInterval resolves a shorthand like "P1", "M3" or "m7" from the
// known name table. Shorthands are case-sensitive: the quality letter
// distinguishes "M3" (major third) from "m3" (minor third).
//
// Errors:
//   - ErrUnknownInterval — shorthand not in the table.
func ParseInterval(shorthand string) (Interval, error) {
	n, ok := intervalNames[shorthand]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownInterval, shorthand)
	}
	return Interval{semitones: n, name: shorthand}, nil
}

// Between measures the signed semitone distance from a to b
// (root → other): Between(a, b).Semitones() == b.Semitones() - a.Semitones().
func Between(a, b Note) Interval {
	return NewInterval(b.Semitones() - a.Semitones())
}

// Semitones reports the signed semitone count.
func (iv Interval) Semitones() int { return iv.semitones }

// Name reports the canonical shorthand, or "" when the count has none
// (negative or beyond one octave).
func (iv Interval) Name() string { return iv.name }

// Class reduces the interval to an interval class in [0,12).
func (iv Interval) Class() PitchClass { return NewPitchClass(iv.semitones) }

// String renders the shorthand when one exists, else the bare count.
func (iv Interval) String() string {
	if iv.name != "" {
		return iv.name
	}
	return strconv.Itoa(iv.semitones)
}
