// Package fret searches for playable fingerings of a chord on a
// fretted string instrument: given a chord's pitches and an instrument's
// open-string tuning, it assigns each string a fret (or mutes it) so
// that every chord tone is covered within a compact hand span.
//
// 🎸 How the search works:
//
//	For each base position from the nut upward, every string picks the
//	lowest fret within the hand span that sounds one of the chord's
//	pitch classes, or stays muted. A candidate is kept when all chord
//	tones are covered; candidates are ordered low position first, and
//	fingerings whose lowest sounding string plays the chord's bass (the
//	first pitch of the current inversion) rank ahead of the rest.
//
// ⚙️ Usage:
//
//	c, _ := chord.ParseChord("E Major")
//	fs, err := fret.Fingerings(c, fret.StandardGuitar())
//	// fs[0].Frets → [0 2 2 1 0 0]
//
// The chord contract this package relies on: len(Pitches()) equals
// len(Intervals()), and Pitches()[0] is the sounding bass of the
// chord's inversion.
//
// Errors:
//
//	ErrBadTuning    - tuning has no strings.
//	ErrNoFingering  - no assignment covers every chord tone.
package fret
