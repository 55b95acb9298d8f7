package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/diagram"
	"github.com/katalvlaran/tonica/fret"
	"github.com/katalvlaran/tonica/pitch"
	"github.com/katalvlaran/tonica/scale"
	"github.com/katalvlaran/tonica/songsmf"
)

var (
	showFrets bool
	sevenths  bool
	midiOut   string
)

var chordCmd = &cobra.Command{
	Use:   "chord <name>",
	Short: "Parse a chord name and list its pitches and intervals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.ParseChord(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(c.FullName())
		fmt.Println("pitches:  ", join(c.Pitches()))
		fmt.Println("intervals:", join(c.Intervals()))
		fmt.Println(diagram.IntervalStrip(c.Symbol(), c.IntervalClasses()))
		if showFrets {
			fs, err := fret.Fingerings(c, fret.StandardGuitar())
			if err != nil {
				return err
			}
			fmt.Println(diagram.Fretboard(c.Symbol(), fs[0], fret.StandardGuitar()))
		}
		return nil
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <name>",
	Short: "Show a key's notes and diatonic chords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := scale.ParseKey(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(k)
		fmt.Println("notes:", join(k.Notes()))
		var opts []scale.ChordOption
		if sevenths {
			opts = append(opts, scale.WithSevenths())
		}
		cs, err := k.Chords(opts...)
		if err != nil {
			return err
		}
		for i, c := range cs {
			fmt.Printf("%4s  %s\n", roman(i+1), c.Name())
		}
		return nil
	},
}

var progCmd = &cobra.Command{
	Use:   "prog <key> <numerals...>",
	Short: "Resolve a roman-numeral progression, optionally to MIDI",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := scale.ParseKey(args[0])
		if err != nil {
			return err
		}
		cs, err := k.Progression(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		for _, c := range cs {
			fmt.Println(c.Name())
		}
		if midiOut != "" {
			if err := songsmf.WriteFile(midiOut, cs); err != nil {
				return err
			}
			fmt.Println("wrote", midiOut)
		}
		return nil
	},
}

var pitchCmd = &cobra.Command{
	Use:   "pitch <text>",
	Short: "Probe the notation codec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pitch.ParsePitch(args[0])
		if err != nil {
			pc, classErr := pitch.ParsePitchClass(args[0])
			if classErr != nil {
				return err
			}
			fmt.Printf("%s  class %d\n", pc, pc.Semitones())
			return nil
		}
		fmt.Printf("%s  midi %d  octave %d  class %s  helmholtz %s\n",
			p, p.Semitones(), p.Octave(), p.Class(), p.Helmholtz())
		return nil
	},
}

func init() {
	chordCmd.Flags().BoolVar(&showFrets, "frets", false, "show a guitar fingering chart")
	keyCmd.Flags().BoolVar(&sevenths, "sevenths", false, "build seventh chords per degree")
	progCmd.Flags().StringVar(&midiOut, "midi", "", "write the progression to a .mid file")
	rootCmd.AddCommand(chordCmd, keyCmd, progCmd, pitchCmd)
}

// join renders any Stringer slice space-separated.
func join[T fmt.Stringer](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return strings.Join(parts, " ")
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// roman renders a 1-based degree as an upper-case numeral.
func roman(degree int) string {
	if degree < 1 || degree > len(romanNumerals) {
		return fmt.Sprint(degree)
	}
	return romanNumerals[degree-1]
}
