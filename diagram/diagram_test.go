package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/diagram"
	"github.com/katalvlaran/tonica/fret"
)

// TestFretboard_Shape: one row per string plus the label row, dots on
// fretted strings, "x" and "o" markers present where expected.
func TestFretboard_Shape(t *testing.T) {
	f := fret.Fingering{Frets: []int{fret.Muted, 3, 2, 0, 1, 0}}
	out := diagram.Fretboard("Cmaj", f, fret.StandardGuitar())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7, "label + six strings")
	assert.Contains(t, out, "Cmaj")
	assert.Contains(t, out, "x", "muted low E")
	assert.Contains(t, out, "o", "open strings")
	assert.Equal(t, 3, strings.Count(out, "●"), "three fretted dots")
}

// TestFretboard_HighPosition shows the chart base for fingerings up
// the neck.
func TestFretboard_HighPosition(t *testing.T) {
	c, err := chord.ParseChord("E Major")
	require.NoError(t, err)
	fs, err := fret.Fingerings(c, fret.StandardGuitar())
	require.NoError(t, err)

	high := fs[len(fs)-1]
	if high.Position() > 1 {
		out := diagram.Fretboard(c.Symbol(), high, fret.StandardGuitar())
		assert.Contains(t, out, "fret", "base position is labeled")
	}
}

// TestIntervalStrip_ReducesClasses: classes outside [0,12) reduce
// mod 12 and light the same slots.
func TestIntervalStrip_ReducesClasses(t *testing.T) {
	a := diagram.IntervalStrip("maj", []int{0, 4, 7})
	b := diagram.IntervalStrip("maj", []int{12, 16, -5})
	assert.Equal(t, a, b, "mod-12 reduction before rendering")
	assert.Equal(t, 3, strings.Count(a, "●"))
	assert.Equal(t, 9, strings.Count(a, "·"))
}
