package scale

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tonica/chord"
	"github.com/katalvlaran/tonica/pitch"
)

// romanDegrees maps a lower-cased numeral to its 1-based scale degree.
var romanDegrees = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7,
}

// romanModifiers maps a modifier suffix to the chord-class name it
// selects, overriding the major/minor case inference.
var romanModifiers = map[string]string{
	"+":  "Aug",
	"°":  "Dim",
	"o":  "Dim",
	"6":  "Sixth",
	"7":  "Dom7",
	"+7": "Aug7",
	"°7": "Dim7",
	"o7": "Dim7",
	"ø7": "HalfDim7",
}

// FromRomanNumeral resolves a token of the form
// <flat?><numeral><modifier?><inversion letter?> against this key:
// "V" → the major triad on degree 5, "ii°7" → the diminished seventh
// on degree 2, "♭VIIa" → the major triad one semitone below degree 7,
// first inversion. The numeral's case must be uniform — "Iv" is
// rejected, not guessed at.
//
// Errors:
//   - ErrMissingTonic          — zero Key.
//   - ErrRomanNumeral          — grammar, case, or modifier failure.
//   - chord.ErrUnknownChordName — modifier names an unregistered class.
func (k Key) FromRomanNumeral(token string) (chord.Chord, error) {
	if k.tonic == nil {
		return chord.Chord{}, ErrMissingTonic
	}

	rest := token
	flat := false
	if strings.HasPrefix(rest, "♭") || strings.HasPrefix(rest, "b") {
		flat = true
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "♭"), "b")
	}

	numeral := leadingNumeral(rest)
	if numeral == "" {
		return chord.Chord{}, fmt.Errorf("%w: no numeral in %q", ErrRomanNumeral, token)
	}
	rest = rest[len(numeral):]

	lower := strings.ToLower(numeral)
	if numeral != lower && numeral != strings.ToUpper(numeral) {
		return chord.Chord{}, fmt.Errorf("%w: mixed-case numeral %q", ErrRomanNumeral, numeral)
	}
	degree, ok := romanDegrees[lower]
	if !ok {
		return chord.Chord{}, fmt.Errorf("%w: %q is not I..VII", ErrRomanNumeral, numeral)
	}

	// A trailing a/c/d is the inversion letter; whatever sits between
	// numeral and letter must be a known modifier.
	inversion := ""
	if n := len(rest); n > 0 {
		if last := rest[n-1:]; last == "a" || last == "c" || last == "d" {
			inversion, rest = last, rest[:n-1]
		}
	}
	className := "Major"
	if numeral == lower {
		className = "Minor"
	}
	if rest != "" {
		className, ok = romanModifiers[rest]
		if !ok {
			return chord.Chord{}, fmt.Errorf("%w: unrecognized modifier %q in %q", ErrRomanNumeral, rest, token)
		}
	}

	root, err := k.Degree(degree)
	if err != nil {
		return chord.Chord{}, err
	}
	if flat {
		root = root.Transpose(pitch.NewInterval(-1))
	}

	class, err := chord.Builtin().ByName(className)
	if err != nil {
		return chord.Chord{}, err
	}
	c := class.At(root)
	if inversion != "" {
		return c.InvertLetter(inversion)
	}
	return c, nil
}

// leadingNumeral takes the longest prefix of roman-numeral letters.
func leadingNumeral(s string) string {
	i := 0
	for i < len(s) && (s[i] == 'i' || s[i] == 'v' || s[i] == 'I' || s[i] == 'V') {
		i++
	}
	return s[:i]
}
