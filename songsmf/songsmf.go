package songsmf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

var (
	// ErrUnplayable indicates a chord with no note inside the MIDI range.
	ErrUnplayable = errors.New("songsmf: chord has no note in MIDI range")

	// ErrEmptyProgression indicates an export with no chords.
	ErrEmptyProgression = errors.New("songsmf: nothing to export")
)

// Options configures an export.
//
// Fields:
//   - Octave   — the octave pitch-class roots are anchored in (default 4,
//     so a C root sounds at MIDI 60).
//   - Tempo    — beats per minute (default 120).
//   - Velocity — NoteOn velocity 1..127 (default 96).
//   - Beats    — whole beats each chord sustains (default 2).
type Options struct {
	Octave   int
	Tempo    float64
	Velocity uint8
	Beats    int
}

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{Octave: 4, Tempo: 120, Velocity: 96, Beats: 2}
}

// SMF builds a single-track Standard MIDI File playing the chords in
// order, each sustained for Beats quarter notes. Pitch roots keep their
// absolute octave; pitch-class roots are anchored at opts.Octave.
//
// Errors:
//   - ErrEmptyProgression — no chords.
//   - ErrUnplayable       — a chord with every note out of MIDI range.
func SMF(chords []chord.Chord, opts Options) (*smf.SMF, error) {
	if len(chords) == 0 {
		return nil, ErrEmptyProgression
	}

	clock := smf.MetricTicks(960)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.Tempo))
	tr.Add(0, smf.MetaInstrument("tonica"))

	sustain := clock.Ticks4th() * uint32(opts.Beats)
	for _, c := range chords {
		keys, err := midiKeys(c, opts.Octave)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, opts.Velocity))
		}
		delta := sustain
		for _, k := range keys {
			tr.Add(delta, midi.NoteOff(0, k))
			delta = 0
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(tr)
	return s, nil
}

// Write renders the progression to w as SMF bytes.
func Write(w io.Writer, chords []chord.Chord, opts Options) error {
	s, err := SMF(chords, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

// WriteFile renders the progression to a .mid file with default
// options.
func WriteFile(path string, chords []chord.Chord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("songsmf: create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, chords, DefaultOptions())
}

// midiKeys maps a chord's sounding pitches to MIDI keys, anchoring
// pitch-class roots at the given octave and keeping the inversion's
// ordering. Out-of-range notes are skipped.
func midiKeys(c chord.Chord, octave int) ([]uint8, error) {
	keys := make([]uint8, 0, len(c.Class().Intervals()))
	prev := -1
	for _, n := range c.Pitches() {
		var value int
		switch v := n.(type) {
		case pitch.Pitch:
			value = v.Semitones()
		default:
			value = n.Class().AsPitch(octave).Semitones()
			// keep the voicing ascending when anchoring classes
			for value <= prev {
				value += 12
			}
		}
		if value < 0 || value > 127 {
			continue
		}
		prev = value
		keys = append(keys, uint8(value))
	}
	if len(keys) == 0 {
		return nil, ErrUnplayable
	}
	return keys, nil
}
