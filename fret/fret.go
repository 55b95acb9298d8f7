package fret

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

var (
	// ErrBadTuning indicates a tuning with no strings.
	ErrBadTuning = errors.New("fret: tuning must have at least one string")

	// ErrNoFingering indicates that no fret assignment covers every
	// chord tone within the search window.
	ErrNoFingering = errors.New("fret: no playable fingering found")
)

// Muted marks a string that is not played.
const Muted = -1

// defaultMaxFret bounds the search: positions above the 12th fret
// repeat the octave.
const defaultMaxFret = 12

// defaultSpan is the hand span in frets (open strings excluded).
const defaultSpan = 3

// Tuning is the open-string pitches of an instrument, low to high.
type Tuning []pitch.Pitch

// StandardGuitar is E2 A2 D3 G3 B3 E4 (MIDI 40 45 50 55 59 64).
func StandardGuitar() Tuning {
	return Tuning{
		pitch.NewPitch(40), pitch.NewPitch(45), pitch.NewPitch(50),
		pitch.NewPitch(55), pitch.NewPitch(59), pitch.NewPitch(64),
	}
}

// Ukulele is G4 C4 E4 A4 (re-entrant, MIDI 67 60 64 69).
func Ukulele() Tuning {
	return Tuning{
		pitch.NewPitch(67), pitch.NewPitch(60), pitch.NewPitch(64), pitch.NewPitch(69),
	}
}

// Fingering assigns every string a fret number, or Muted. Frets[i]
// belongs to Tuning[i].
type Fingering struct {
	Frets []int
}

// Position reports the lowest fretted (non-open) fret, 0 when the
// fingering uses only open strings.
func (f Fingering) Position() int {
	pos := 0
	for _, fr := range f.Frets {
		if fr > 0 && (pos == 0 || fr < pos) {
			pos = fr
		}
	}
	return pos
}

// String renders chart form: "x32010" style, with dots past fret 9.
func (f Fingering) String() string {
	out := ""
	for _, fr := range f.Frets {
		switch {
		case fr == Muted:
			out += "x"
		case fr > 9:
			out += fmt.Sprintf("(%d)", fr)
		default:
			out += fmt.Sprintf("%d", fr)
		}
	}
	return out
}

// Fingerings searches fret assignments for the chord on the given
// tuning. Candidates are deduplicated and ordered: bass-correct
// fingerings first, then by position, then lexically by frets.
//
// Errors:
//   - ErrBadTuning   — empty tuning.
//   - ErrNoFingering — no candidate covers every chord tone.
func Fingerings(c chord.Chord, t Tuning) ([]Fingering, error) {
	if len(t) == 0 {
		return nil, ErrBadTuning
	}

	want := make(map[int]bool)
	for _, cls := range c.IntervalClasses() {
		want[normClass(c.Root().Class().Semitones()+cls)] = true
	}
	bass := c.Pitches()[0].Class().Semitones()

	type ranked struct {
		f        Fingering
		bassOK   bool
		position int
	}
	var found []ranked
	seen := make(map[string]bool)

	for base := 0; base+defaultSpan <= defaultMaxFret; base++ {
		frets := make([]int, len(t))
		covered := make(map[int]bool)
		for s, open := range t {
			frets[s] = Muted
			for fr := 0; fr <= base+defaultSpan; fr++ {
				if fr != 0 && fr < base {
					continue
				}
				cls := normClass(open.Semitones() + fr)
				if want[cls] {
					frets[s] = fr
					covered[cls] = true
					break
				}
			}
		}
		if len(covered) != len(want) {
			continue
		}
		f := Fingering{Frets: frets}
		key := f.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, ranked{
			f:        f,
			bassOK:   lowestClass(t, frets) == bass,
			position: f.Position(),
		})
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s on %d strings", ErrNoFingering, c.Name(), len(t))
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].bassOK != found[j].bassOK {
			return found[i].bassOK
		}
		if found[i].position != found[j].position {
			return found[i].position < found[j].position
		}
		return found[i].f.String() < found[j].f.String()
	})
	out := make([]Fingering, len(found))
	for i, r := range found {
		out[i] = r.f
	}
	return out, nil
}

// lowestClass reports the pitch class of the lowest sounding string.
func lowestClass(t Tuning, frets []int) int {
	for s, fr := range frets {
		if fr != Muted {
			return normClass(t[s].Semitones() + fr)
		}
	}
	return -1
}

func normClass(n int) int { return ((n % 12) + 12) % 12 }
