// Package chord provides named interval patterns (ChordClass), a
// collision-checked registry that resolves names, abbreviations and
// interval fingerprints, and the Chord value that binds a pattern to a
// concrete root with an inversion.
//
// 🚀 What lives here?
//
//   - ChordClass — an immutable named pattern: ordered intervals from an
//     implicit root (first always 0), a name, a full name, abbreviations
//   - Registry   — explicit lookup structure keyed by every alias and by
//     the canonical interval fingerprint; Builtin() holds the fixed table
//   - Chord      — a ChordClass at a root (Pitch or PitchClass) with an
//     inversion in [0, len)
//
// 🔍 Matching is exact-set: FromPitches measures each interval from the
// first pitch, normalizes the set into a sorted mod-12 fingerprint
// ("0-4-7" for a major triad) and looks it up — no subset or superset
// matching. No two registered patterns may share a fingerprint; the
// built-in table is verified at init and Registry.Add rejects collisions
// instead of silently overwriting.
//
// ⚙️ Usage:
//
//	c, _ := chord.ParseChord("E Major")       // E, G♯, B
//	cc, _ := chord.Builtin().ByName("min7")   // Minor Seventh pattern
//	first, _ := cc.At(root).Invert(1)          // first inversion
//	named, _ := chord.FromPitches(e, gs, b)    // → E Major
//
// Inversion letters follow chart convention: a=1, c=2, d=3 ("b" is
// skipped because it collides with the flat symbol).
//
// Errors:
//
//	ErrUnknownChordName     - name/abbreviation not registered.
//	ErrUnmatchedIntervals   - interval set matches no registered pattern.
//	ErrInvalidInversion     - inversion index or letter out of range.
//	ErrBadPattern           - malformed ChordClass definition.
//	ErrDuplicateChordName   - Add would shadow an existing alias.
//	ErrDuplicateFingerprint - Add would shadow an existing pattern.
package chord
