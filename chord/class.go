package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tonica/pitch"
)

// ChordClass is an immutable named interval pattern taken from an
// implicit root: the first interval is always 0. A class carries a
// short canonical name ("Dim"), an unabbreviated full name
// ("Diminished") and a non-empty list of abbreviations ("dim", "°"),
// the first of which is the preferred one used in chord symbols.
type ChordClass struct {
	name      string
	fullName  string
	abbrevs   []string
	intervals []pitch.Interval
}

// NewChordClass validates and builds a ChordClass from semitone counts.
//
// Errors:
//   - ErrBadPattern — empty name, empty abbreviation list, empty
//     pattern, or a first interval other than 0.
func NewChordClass(name, fullName string, abbrevs []string, semitones []int) (ChordClass, error) {
	if name == "" || fullName == "" {
		return ChordClass{}, fmt.Errorf("%w: name and full name required", ErrBadPattern)
	}
	if len(abbrevs) == 0 {
		return ChordClass{}, fmt.Errorf("%w: %s needs at least one abbreviation", ErrBadPattern, name)
	}
	if len(semitones) == 0 || semitones[0] != 0 {
		return ChordClass{}, fmt.Errorf("%w: %s must start at interval 0", ErrBadPattern, name)
	}
	ivs := make([]pitch.Interval, len(semitones))
	for i, n := range semitones {
		ivs[i] = pitch.NewInterval(n)
	}
	return ChordClass{
		name:      name,
		fullName:  fullName,
		abbrevs:   append([]string(nil), abbrevs...),
		intervals: ivs,
	}, nil
}

// Name reports the short canonical name ("Maj7").
func (c ChordClass) Name() string { return c.name }

// FullName reports the unabbreviated name ("Major Seventh").
func (c ChordClass) FullName() string { return c.fullName }

// Abbrev reports the preferred (first-registered) abbreviation.
func (c ChordClass) Abbrev() string { return c.abbrevs[0] }

// Abbrevs returns a copy of all registered abbreviations.
func (c ChordClass) Abbrevs() []string {
	return append([]string(nil), c.abbrevs...)
}

// Intervals returns a copy of the root-relative interval pattern.
func (c ChordClass) Intervals() []pitch.Interval {
	return append([]pitch.Interval(nil), c.intervals...)
}

// Len reports the number of chord tones.
func (c ChordClass) Len() int { return len(c.intervals) }

// At binds the class to a concrete root with inversion 0.
func (c ChordClass) At(root pitch.Note) Chord {
	return Chord{class: c, root: root}
}

// Fingerprint encodes the pattern as its canonical registry key: the
// interval classes (mod 12), deduplicated, sorted ascending, joined
// with "-". A major triad fingerprints as "0-4-7" no matter the octave
// spread or ordering of its input intervals.
func (c ChordClass) Fingerprint() string {
	return fingerprint(c.intervals)
}

// fingerprint implements the shared encoding used at registration and
// at match time; both sides must agree byte-for-byte.
func fingerprint(ivs []pitch.Interval) string {
	seen := make(map[int]bool, len(ivs))
	classes := make([]int, 0, len(ivs))
	for _, iv := range ivs {
		cls := iv.Class().Semitones()
		if !seen[cls] {
			seen[cls] = true
			classes = append(classes, cls)
		}
	}
	sort.Ints(classes)
	parts := make([]string, len(classes))
	for i, cls := range classes {
		parts[i] = strconv.Itoa(cls)
	}
	return strings.Join(parts, "-")
}
