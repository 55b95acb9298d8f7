package chord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/tonica/pitch"
)

// chordNameRe splits "<root> <class name or abbreviation>"; the root
// may be scientific ("E4"), Helmholtz ("e'"), or a bare pitch class
// ("E♭"), and the class defaults to Major when omitted.
var chordNameRe = regexp.MustCompile(`^([A-Ga-g][#♯b♭𝄪𝄫]*(?:[0-9]+|,*'*))\s*(.*)$`)

// ParseChord parses a chord name like "E Major", "c♯ min7" or "G4 dim"
// against the built-in registry. See Registry.Parse for custom tables.
func ParseChord(s string) (Chord, error) {
	return Builtin().Parse(s)
}

// Parse parses a chord name against this registry.
//
// Errors:
//   - pitch.ErrNotation   — the root is not a valid pitch spelling.
//   - ErrUnknownChordName — the class part is not registered.
func (r *Registry) Parse(s string) (Chord, error) {
	m := chordNameRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Chord{}, fmt.Errorf("%w: expected \"<root> <chord class>\", got %q", pitch.ErrNotation, s)
	}
	root, err := parseRoot(m[1])
	if err != nil {
		return Chord{}, err
	}
	name := strings.TrimSpace(m[2])
	if name == "" {
		name = "Major"
	}
	class, err := r.ByName(name)
	if err != nil {
		return Chord{}, err
	}
	return class.At(root), nil
}

// parseRoot picks the pitch variant: absolute when the token carries
// octave information (digits, commas, apostrophes), pitch class
// otherwise.
func parseRoot(token string) (pitch.Note, error) {
	if strings.ContainsAny(token, "0123456789,'") {
		return pitch.ParsePitch(token)
	}
	return pitch.ParsePitchClass(token)
}
