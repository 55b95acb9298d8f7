// Package scale provides named ascending pitch-class sequences (Scale),
// their rotation-derived modes, the Key that binds a scale to a concrete
// tonic, diatonic chord generation per degree, and the roman-numeral
// resolver that turns tokens like "V", "ii°", or "♭VII" into chords.
//
// 🚀 What lives here?
//
//   - Scale         — name + offsets (first always 0), parent back-ref,
//     and one derived mode per offset, each itself a full Scale
//   - ScaleRegistry — explicit name→Scale lookup; BuiltinScales() holds
//     the fixed table (Diatonic Major & its seven church modes,
//     minor variants, pentatonics, blues)
//   - Key           — Scale at a tonic: concrete notes, diatonic triads
//     or sevenths, whole progressions from roman-numeral text
//
// 🧭 Mode derivation: mode i rotates the offsets left by i, subtracts
// the new first element and normalizes mod 12, so every mode starts at
// 0. A scale with p offsets has exactly p modes.
//
// ⚙️ Usage:
//
//	k, _ := scale.ParseKey("E Diatonic Major")
//	k.Notes()                 // E F♯ G♯ A B C♯ D♯
//	k.Chords()                // E Major, F♯ Minor, … D♯ Dim
//	k.Progression("I-IV-V")   // resolved chord sequence
//	k.FromRomanNumeral("V7a") // B Dom7, first inversion
//
// 🎯 Roman-numeral grammar: ^(♭?)(numeral)(modifier?)([acd]?)$ with the
// numeral in I…VII, uniformly upper (major) or lower (minor) case;
// modifiers +, °, 6, 7, +7, °7, ø7 select a concrete chord class and
// override the case inference; a leading flat lowers the degree pitch
// one semitone; a trailing letter picks the inversion (a=1, c=2, d=3).
//
// Errors:
//
//	ErrUnknownScaleName   - scale name not in the registry.
//	ErrBadScale           - malformed offset sequence.
//	ErrDuplicateScaleName - registration would shadow an existing name.
//	ErrRomanNumeral       - token fails the grammar, has a mixed-case
//	                        numeral, or an unrecognized modifier.
//	ErrMissingTonic       - resolution attempted without a bound tonic.
package scale
