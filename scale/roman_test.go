package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/scale"
)

// TestRoman_CaseInference: upper case is major, lower case is minor.
func TestRoman_CaseInference(t *testing.T) {
	k, err := scale.ParseKey("E Diatonic Major")
	require.NoError(t, err)

	five, err := k.FromRomanNumeral("V")
	require.NoError(t, err)
	assert.Equal(t, "B Major", five.Name())

	two, err := k.FromRomanNumeral("ii")
	require.NoError(t, err)
	assert.Equal(t, "F♯ Minor", two.Name())
}

// TestRoman_MixedCaseRejected: "Iv" is neither IV nor iv.
func TestRoman_MixedCaseRejected(t *testing.T) {
	k, err := scale.ParseKey("E")
	require.NoError(t, err)

	for _, bad := range []string{"Iv", "vI", "iV"} {
		_, err = k.FromRomanNumeral(bad)
		assert.ErrorIs(t, err, scale.ErrRomanNumeral, "token %q", bad)
	}
}

// TestRoman_Modifiers override the case inference with concrete
// chord classes.
func TestRoman_Modifiers(t *testing.T) {
	k, err := scale.ParseKey("C")
	require.NoError(t, err)

	cases := map[string]string{
		"V7":    "Dom7",
		"I6":    "Sixth",
		"IV+":   "Aug",
		"vii°":  "Dim",
		"vii°7": "Dim7",
		"viiø7": "HalfDim7",
		"V+7":   "Aug7",
		"ii7":   "Dom7", // the modifier table overrides the lowercase inference
	}
	for token, want := range cases {
		c, err := k.FromRomanNumeral(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, c.Class().Name(), "token %q", token)
	}

	_, err = k.FromRomanNumeral("V9")
	assert.ErrorIs(t, err, scale.ErrRomanNumeral, "unrecognized modifier")
}

// TestRoman_LeadingFlat lowers the resolved degree pitch one semitone.
func TestRoman_LeadingFlat(t *testing.T) {
	k, err := scale.ParseKey("C")
	require.NoError(t, err)

	flatSeven, err := k.FromRomanNumeral("♭VII")
	require.NoError(t, err)
	assert.Equal(t, "A♯ Major", flatSeven.Name(), "B♭ spelled via the sharp table")

	asciiFlat, err := k.FromRomanNumeral("bIII")
	require.NoError(t, err)
	assert.Equal(t, "D♯ Major", asciiFlat.Name())
}

// TestRoman_InversionLetter applies a,c,d through Chord.Invert.
func TestRoman_InversionLetter(t *testing.T) {
	k, err := scale.ParseKey("E")
	require.NoError(t, err)

	c, err := k.FromRomanNumeral("Va")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Inversion())
	assert.Equal(t, "D♯", c.Pitches()[0].String(), "first inversion sounds the third in the bass")

	c, err = k.FromRomanNumeral("V7c")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Inversion())
	assert.Equal(t, "Dom7", c.Class().Name())
}

// TestRoman_DegreeBounds: every numeral I..VII resolves to its note.
func TestRoman_DegreeBounds(t *testing.T) {
	k, err := scale.ParseKey("C")
	require.NoError(t, err)
	notes := k.Notes()

	for i, numeral := range []string{"I", "II", "III", "IV", "V", "VI", "VII"} {
		c, err := k.FromRomanNumeral(numeral)
		require.NoError(t, err, "numeral %q", numeral)
		assert.Equal(t, notes[i].Semitones(), c.Root().Semitones(), "numeral %q", numeral)
	}
}

// TestRoman_MissingTonic: the zero Key refuses resolution immediately.
func TestRoman_MissingTonic(t *testing.T) {
	var k scale.Key
	_, err := k.FromRomanNumeral("V")
	assert.ErrorIs(t, err, scale.ErrMissingTonic)
}

// TestRoman_Garbage: tokens without a numeral fail the grammar.
func TestRoman_Garbage(t *testing.T) {
	k, err := scale.ParseKey("C")
	require.NoError(t, err)

	for _, bad := range []string{"", "♭", "X", "7", "a"} {
		_, err = k.FromRomanNumeral(bad)
		assert.ErrorIs(t, err, scale.ErrRomanNumeral, "token %q", bad)
	}
	_, err = k.FromRomanNumeral("viii")
	assert.ErrorIs(t, err, scale.ErrRomanNumeral, "viii is not a degree")
}

// TestRoman_ChordIsConcrete: resolution produces a playable chord bound
// to the key's diatonic pitch.
func TestRoman_ChordIsConcrete(t *testing.T) {
	k, err := scale.ParseKey("E4")
	require.NoError(t, err)

	c, err := k.FromRomanNumeral("V")
	require.NoError(t, err)
	assert.Equal(t, 71, c.Root().Semitones(), "B4")
	assert.IsType(t, chord.Chord{}, c)
}
