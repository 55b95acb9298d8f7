package pitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonica/pitch"
)

// TestNewPitchClass_Idempotent verifies normalize(normalize(x)) == normalize(x)
// over a wide signed range.
func TestNewPitchClass_Idempotent(t *testing.T) {
	for x := -50; x <= 50; x++ {
		once := pitch.NewPitchClass(x)
		twice := pitch.NewPitchClass(once.Semitones())
		assert.Equal(t, once, twice, "normalization must be idempotent for %d", x)
		assert.GreaterOrEqual(t, once.Semitones(), 0)
		assert.Less(t, once.Semitones(), 12)
	}
}

// TestParsePitchClass_Spellings covers letters, case-insensitivity and
// summed accidentals, including enharmonic pairs.
func TestParsePitchClass_Spellings(t *testing.T) {
	cases := map[string]int{
		"C": 0, "c": 0, "E": 4, "B": 11,
		"C#": 1, "C♯": 1, "Db": 1, "D♭": 1,
		"F#": 6, "Gb": 6,
		"Cb": 11, "B#": 0,
		"C𝄪": 2, "D𝄫": 0, "C##": 2, "Ebb": 2,
	}
	for in, want := range cases {
		pc, err := pitch.ParsePitchClass(in)
		require.NoError(t, err, "%q must parse", in)
		assert.Equal(t, want, pc.Semitones(), "%q", in)
	}
}

// TestParsePitchClass_Rejects ensures non-letter input and stray
// characters fail with ErrNotation.
func TestParsePitchClass_Rejects(t *testing.T) {
	for _, bad := range []string{"", "H", "C4", "C!", "#C", "♭"} {
		_, err := pitch.ParsePitchClass(bad)
		assert.ErrorIs(t, err, pitch.ErrNotation, "%q must be rejected", bad)
	}
}

// TestPitchClass_Transpose wraps around the octave.
func TestPitchClass_Transpose(t *testing.T) {
	e := pitch.NewPitchClass(4)

	up := e.Transpose(pitch.NewInterval(9))
	assert.Equal(t, 1, up.Semitones(), "E up a major sixth wraps to C♯")

	down := e.Transpose(pitch.NewInterval(-7))
	assert.Equal(t, 9, down.Semitones(), "E down a fifth wraps to A")
}

// TestPitchClass_Names checks both enharmonic spelling tables.
func TestPitchClass_Names(t *testing.T) {
	pc := pitch.NewPitchClass(6)
	assert.Equal(t, "F♯", pc.String())
	assert.Equal(t, "G♭", pc.FlatName())

	natural := pitch.NewPitchClass(4)
	assert.Equal(t, "E", natural.String())
	assert.Equal(t, "E", natural.FlatName(), "naturals spell identically in both tables")
}

// TestPitchClass_AsPitch anchors the class in an octave (MIDI numbering).
func TestPitchClass_AsPitch(t *testing.T) {
	c := pitch.NewPitchClass(0)
	assert.Equal(t, 60, c.AsPitch(4).Semitones(), "C4 is MIDI 60")
	assert.Equal(t, 64, pitch.NewPitchClass(4).AsPitch(4).Semitones(), "E4 is MIDI 64")
	assert.Equal(t, 0, c.AsPitch(-1).Semitones(), "C-1 is MIDI 0")
}
