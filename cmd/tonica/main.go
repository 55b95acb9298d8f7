// Command tonica inspects chords, keys and progressions from the
// command line and can export progressions as MIDI files.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonica",
	Short: "Symbolic music theory: pitches, chords, scales, progressions",
	Long: `tonica parses musical notation (scientific and Helmholtz), names
chords from pitch sets, derives diatonic chords from keys, resolves
roman-numeral progressions, and sketches fretboard fingerings.`,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
