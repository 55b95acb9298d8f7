package pitch_test

import (
	"testing"

	"github.com/katalvlaran/tonica/pitch"
)

// BenchmarkParsePitch_Scientific exercises the regexp + octave math path.
func BenchmarkParsePitch_Scientific(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pitch.ParsePitch("F♯3"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParsePitch_Helmholtz exercises the case/comma/apostrophe path.
func BenchmarkParsePitch_Helmholtz(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := pitch.ParsePitch("c,,"); err != nil {
			b.Fatal(err)
		}
	}
}
