// Package pitch provides the exact arithmetic core of tonica: signed
// semitone Intervals, octave-free PitchClasses, absolute MIDI-style
// Pitches, and the bidirectional notation codec between all three and
// their textual spellings.
//
// 🚀 What lives here?
//
//   - Interval    — a signed semitone distance ("P5" = 7, "m3" = 3)
//   - PitchClass  — an integer in [0,12), a pitch modulo the octave
//   - Pitch       — an absolute semitone value, MIDI numbering (C4 = 60)
//   - Note        — the capability contract shared by Pitch & PitchClass
//
// 🎼 Two textual grammars, selected by the presence of a digit:
//
//	Scientific:  ^[A-G][#♯b♭𝄪𝄫]*\d+$        e.g. "E4", "F♯3", "Bb2"
//	Helmholtz:   ^[A-Ga-g][#♯b♭𝄪𝄫]*,*'*$    e.g. "c'", "C,", "f♯"
//
// In Helmholtz notation the letter's case selects the base octave
// (upper case sits one octave below lower case, reference octave 4);
// each comma lowers and each apostrophe raises the octave by one.
// Accidentals sum in order: #/♯ = +1, b/♭ = −1, 𝄪 = +2, 𝄫 = −2.
//
// ⚙️ Usage:
//
//	p, err := pitch.ParsePitch("E4")      // p.Semitones() == 64
//	pc, err := pitch.ParsePitchClass("F♯") // pc == 6
//	iv, err := pitch.ParseInterval("P5")   // iv.Semitones() == 7
//	pc.Transpose(iv)                       // C♯
//
// Invariants:
//
//   - NewInterval(n).Semitones() == n for every integer n
//   - Between(a, b).Semitones() == b.Semitones() - a.Semitones() (signed)
//   - NewPitchClass is idempotent: normalize(normalize(x)) == normalize(x)
//   - ParsePitch(p.String()) recovers p's numeric value exactly
//
// All values are immutable; every operation is a bounded, pure
// computation — no locks, no goroutines, no I/O.
//
// Errors:
//
//	ErrNotation        - input does not match the expected grammar.
//	ErrUnknownInterval - interval shorthand not in the name table.
package pitch
