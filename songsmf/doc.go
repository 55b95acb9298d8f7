// Package songsmf exports chords and progressions as Standard MIDI
// Files (SMF) using gitlab.com/gomidi/midi/v2. Each chord becomes a
// block of simultaneous NoteOn/NoteOff pairs on a single track; pitch
// classes without octave information are anchored in a configurable
// octave (MIDI numbering, C4 = 60).
//
//	k, _ := scale.ParseKey("E")
//	cs, _ := k.Progression("I - IV - V")
//	err := songsmf.WriteFile("prog.mid", cs)
//
// Notes falling outside the 0..127 MIDI range are skipped; a chord with
// no representable note at all fails with ErrUnplayable.
package songsmf
