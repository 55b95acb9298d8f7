package chord_test

import (
	"fmt"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

// ExampleParseChord parses a chord name and lists its pitches.
func ExampleParseChord() {
	c, _ := chord.ParseChord("E Major")
	for _, p := range c.Pitches() {
		fmt.Println(p)
	}
	// Output:
	// E
	// G♯
	// B
}

// ExampleChord_Invert shows the cyclic rotation of an inversion.
func ExampleChord_Invert() {
	c, _ := chord.ParseChord("C maj")
	first, _ := c.Invert(1)

	fmt.Println(c.Intervals())
	fmt.Println(first.Intervals())
	fmt.Println(first.Pitches())
	// Output:
	// [P1 M3 P5]
	// [M3 P5 P1]
	// [E G C]
}

// ExampleFromPitches recognizes a concrete pitch set as a named chord.
func ExampleFromPitches() {
	a, _ := pitch.ParsePitch("A3")
	c, _ := pitch.ParsePitch("C4")
	e, _ := pitch.ParsePitch("E4")
	g, _ := pitch.ParsePitch("G4")

	recognized, _ := chord.FromPitches(a, c, e, g)
	fmt.Println(recognized.FullName())
	fmt.Println(recognized.Symbol())
	// Output:
	// A3 Minor Seventh
	// A3min7
}
