// Package diagram renders chords for the terminal: a fretboard chart
// for a fingering and a 12-slot interval-class strip, both styled with
// lipgloss and returned as plain strings (safe to print anywhere).
//
// The renderer consumes only value objects from the core: an ordered
// interval-class list (ints reducible into [0,12)) plus the chord's
// preferred abbreviation, or a fret.Fingering plus its tuning.
//
//	c, _ := chord.ParseChord("E Major")
//	fs, _ := fret.Fingerings(c, fret.StandardGuitar())
//	fmt.Println(diagram.Fretboard(c.Symbol(), fs[0], fret.StandardGuitar()))
package diagram
