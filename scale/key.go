package scale

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

// Key is a Scale bound to a concrete tonic (Pitch or PitchClass). The
// zero Key has no tonic and refuses to resolve anything.
type Key struct {
	scale *Scale
	tonic pitch.Note
}

// ChordOption configures Key.Chords.
type ChordOption func(*chordConfig)

type chordConfig struct {
	sevenths bool
	registry *chord.Registry
}

// WithSevenths builds tetrads (degrees 0,2,4,6 of each rotated view)
// instead of triads.
func WithSevenths() ChordOption {
	return func(c *chordConfig) { c.sevenths = true }
}

// WithChordRegistry matches degrees against a custom chord registry
// instead of chord.Builtin().
func WithChordRegistry(r *chord.Registry) ChordOption {
	return func(c *chordConfig) { c.registry = r }
}

// ParseKey parses "<root> <scale name>", the scale name defaulting to
// "Diatonic Major": "E", "f♯ Natural Minor", "Bb3 Blues".
//
// Errors:
//   - pitch.ErrNotation   — the root is not a valid pitch spelling.
//   - ErrUnknownScaleName — the scale name is not registered.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Key{}, fmt.Errorf("%w: expected \"<root> <scale name>\", got %q", pitch.ErrNotation, s)
	}
	tonic, err := parseTonic(fields[0])
	if err != nil {
		return Key{}, err
	}
	name := "Diatonic Major"
	if len(fields) > 1 {
		name = strings.Join(fields[1:], " ")
	}
	sc, err := BuiltinScales().ByName(name)
	if err != nil {
		return Key{}, err
	}
	return sc.At(tonic), nil
}

// parseTonic picks the pitch variant: absolute when the token carries
// octave information, pitch class otherwise.
func parseTonic(token string) (pitch.Note, error) {
	if strings.ContainsAny(token, "0123456789,'") {
		return pitch.ParsePitch(token)
	}
	return pitch.ParsePitchClass(token)
}

// Scale reports the bound scale.
func (k Key) Scale() *Scale { return k.scale }

// Tonic reports the bound tonic, nil for the zero Key.
func (k Key) Tonic() pitch.Note { return k.tonic }

// Notes returns the tonic transposed by each scale interval.
func (k Key) Notes() []pitch.Note {
	notes := make([]pitch.Note, len(k.scale.offsets))
	for i, off := range k.scale.offsets {
		notes[i] = k.tonic.Transpose(pitch.NewInterval(off))
	}
	return notes
}

// Chords builds one diatonic chord per scale degree. For degree i the
// offset sequence is rotated so that degree i comes first — without
// re-zeroing, since every pitch is still measured from the fixed
// tonic — and degrees 0,2,4 (and 6 with WithSevenths) of that view
// become the chord tones. Each tone set is recognized by exact-set
// matching, so the result carries proper names: in E major,
// E Major, F♯ Minor, G♯ Minor, A Major, B Major, C♯ Minor, D♯ Dim.
//
// Errors:
//   - ErrMissingTonic             — zero Key.
//   - chord.ErrUnmatchedIntervals — a degree yields an unregistered set.
func (k Key) Chords(opts ...ChordOption) ([]chord.Chord, error) {
	if k.tonic == nil {
		return nil, ErrMissingTonic
	}
	cfg := chordConfig{registry: chord.Builtin()}
	for _, opt := range opts {
		opt(&cfg)
	}
	degrees := []int{0, 2, 4}
	if cfg.sevenths {
		degrees = append(degrees, 6)
	}

	n := len(k.scale.offsets)
	out := make([]chord.Chord, 0, n)
	for i := 0; i < n; i++ {
		tones := make([]pitch.Note, 0, len(degrees))
		for _, d := range degrees {
			off := k.scale.offsets[(i+d)%n]
			tones = append(tones, k.tonic.Transpose(pitch.NewInterval(off)))
		}
		c, err := cfg.registry.Match(tones...)
		if err != nil {
			return nil, fmt.Errorf("degree %d of %s: %w", i+1, k, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Progression splits text on whitespace, hyphens and plus signs and
// resolves each token as a roman numeral: "I - vi - IV - V".
//
// Errors: those of FromRomanNumeral, wrapped with the failing token.
func (k Key) Progression(text string) ([]chord.Chord, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '+'
	})
	out := make([]chord.Chord, 0, len(tokens))
	for _, tok := range tokens {
		c, err := k.FromRomanNumeral(tok)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Degree returns the diatonic pitch of a 1-based scale degree.
//
// Errors:
//   - ErrMissingTonic — zero Key.
//   - ErrDegreeRange  — degree outside [1, Len()].
func (k Key) Degree(degree int) (pitch.Note, error) {
	if k.tonic == nil {
		return nil, ErrMissingTonic
	}
	if degree < 1 || degree > len(k.scale.offsets) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDegreeRange, degree, len(k.scale.offsets))
	}
	return k.tonic.Transpose(pitch.NewInterval(k.scale.offsets[degree-1])), nil
}

// String renders "<tonic> <scale name>": "E Diatonic Major".
func (k Key) String() string {
	if k.scale == nil {
		return "(unbound key)"
	}
	if k.tonic == nil {
		return k.scale.String()
	}
	return k.tonic.String() + " " + k.scale.name
}
