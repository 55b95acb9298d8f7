package chord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

func names(notes []pitch.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

// TestParseChord_MajorTriad: "E Major" yields E, G♯, B at inversion 0.
func TestParseChord_MajorTriad(t *testing.T) {
	c, err := chord.ParseChord("E Major")
	require.NoError(t, err)

	assert.Equal(t, "E Major", c.Name())
	assert.Equal(t, 0, c.Inversion())
	assert.Equal(t, []string{"E", "G♯", "B"}, names(c.Pitches()))
}

// TestParseChord_Defaults: a bare root is a major chord; abbreviations
// and absolute roots parse too.
func TestParseChord_Defaults(t *testing.T) {
	c, err := chord.ParseChord("Eb")
	require.NoError(t, err)
	assert.Equal(t, "Major", c.Class().Name())

	c, err = chord.ParseChord("c♯ min7")
	require.NoError(t, err)
	assert.Equal(t, "Min7", c.Class().Name())

	c, err = chord.ParseChord("G4 dim")
	require.NoError(t, err)
	assert.Equal(t, "Dim", c.Class().Name())
	assert.Equal(t, 67, c.Root().Semitones(), "absolute root keeps its octave")
}

// TestParseChord_Rejects surfaces the underlying error kinds.
func TestParseChord_Rejects(t *testing.T) {
	_, err := chord.ParseChord("H Major")
	assert.ErrorIs(t, err, pitch.ErrNotation)

	_, err = chord.ParseChord("E Mystery")
	assert.ErrorIs(t, err, chord.ErrUnknownChordName)
}

// TestChord_InvertRotatesLeft: inversion 1 of a Major chord is the
// interval list rotated left by one, and pitches follow.
func TestChord_InvertRotatesLeft(t *testing.T) {
	e, err := pitch.ParsePitchClass("E")
	require.NoError(t, err)
	major, err := chord.Builtin().ByName("Major")
	require.NoError(t, err)

	first, err := major.At(e).Invert(1)
	require.NoError(t, err)

	ivs := first.Intervals()
	require.Len(t, ivs, 3)
	assert.Equal(t, []int{4, 7, 0}, []int{ivs[0].Semitones(), ivs[1].Semitones(), ivs[2].Semitones()})
	assert.Equal(t, []string{"G♯", "B", "E"}, names(first.Pitches()), "pitches rotate with the inversion")
}

// TestChord_InversionCycle: inverting by the chord length is the root
// position again.
func TestChord_InversionCycle(t *testing.T) {
	c, err := chord.ParseChord("A min7")
	require.NoError(t, err)

	m := c.Class().Len()
	cycled, err := c.Invert(m)
	require.NoError(t, err)

	assert.Equal(t, 0, cycled.Inversion())
	assert.Equal(t, names(c.Pitches()), names(cycled.Pitches()))
}

// TestChord_InvertLetter maps a,c,d to 1,2,3 and rejects the rest.
func TestChord_InvertLetter(t *testing.T) {
	c, err := chord.ParseChord("C maj7")
	require.NoError(t, err)

	for letter, want := range map[string]int{"a": 1, "c": 2, "d": 3} {
		inv, err := c.InvertLetter(letter)
		require.NoError(t, err, "letter %q", letter)
		assert.Equal(t, want, inv.Inversion(), "letter %q", letter)
	}

	_, err = c.InvertLetter("b")
	assert.ErrorIs(t, err, chord.ErrInvalidInversion, `"b" is reserved for the flat symbol`)
	_, err = c.InvertLetter("e")
	assert.ErrorIs(t, err, chord.ErrInvalidInversion)
}

// TestChord_InvalidInversions: constructor enforces [0,len), Invert
// rejects negatives.
func TestChord_InvalidInversions(t *testing.T) {
	major, err := chord.Builtin().ByName("Major")
	require.NoError(t, err)
	root := pitch.NewPitchClass(0)

	_, err = chord.New(major, root, 3)
	assert.ErrorIs(t, err, chord.ErrInvalidInversion)
	_, err = chord.New(major, root, -1)
	assert.ErrorIs(t, err, chord.ErrInvalidInversion)

	_, err = major.At(root).Invert(-2)
	assert.ErrorIs(t, err, chord.ErrInvalidInversion)
}

// TestFromPitches_RecognizesNamedChords: first pitch is the root.
func TestFromPitches_RecognizesNamedChords(t *testing.T) {
	e4, _ := pitch.ParsePitch("E4")
	gs4, _ := pitch.ParsePitch("G♯4")
	b4, _ := pitch.ParsePitch("B4")

	c, err := chord.FromPitches(e4, gs4, b4)
	require.NoError(t, err)
	assert.Equal(t, "Major", c.Class().Name())
	assert.Equal(t, 64, c.Root().Semitones())

	// Pitch classes work the same way; intervals wrap mod 12.
	ds := pitch.NewPitchClass(3)
	fs := pitch.NewPitchClass(6)
	a := pitch.NewPitchClass(9)
	c, err = chord.FromPitches(ds, fs, a)
	require.NoError(t, err)
	assert.Equal(t, "D♯ Dim", c.Name())
}

// TestFromPitches_Failures: empty input and unknown sets.
func TestFromPitches_Failures(t *testing.T) {
	_, err := chord.FromPitches()
	assert.ErrorIs(t, err, chord.ErrEmptyChord)

	_, err = chord.FromPitches(pitch.NewPitchClass(0), pitch.NewPitchClass(1))
	assert.ErrorIs(t, err, chord.ErrUnmatchedIntervals)
}

// TestChord_Names covers the three display forms.
func TestChord_Names(t *testing.T) {
	c, err := chord.ParseChord("D♯ dim")
	require.NoError(t, err)

	assert.Equal(t, "D♯ Dim", c.Name())
	assert.Equal(t, "D♯ Diminished", c.FullName())
	assert.Equal(t, "D♯dim", c.Symbol(), "symbol uses the preferred abbreviation")
}

// TestChord_IntervalClasses stay reducible into [0,12) for renderers.
func TestChord_IntervalClasses(t *testing.T) {
	c, err := chord.ParseChord("E maj7")
	require.NoError(t, err)

	inv, err := c.Invert(2)
	require.NoError(t, err)
	for _, cls := range inv.IntervalClasses() {
		assert.GreaterOrEqual(t, cls, 0)
		assert.Less(t, cls, 12)
	}
	assert.Len(t, inv.IntervalClasses(), len(inv.Pitches()), "one class per sounding pitch")
}
