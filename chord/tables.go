package chord

// builtinPatterns is the fixed chord-class table. Alias keys and
// fingerprints must be collision-free across the whole table; Add
// enforces that and mustBuiltin panics on violation.
//
// Abbreviation choices avoid case-folded alias clashes ("M" would fold
// onto Minor's "m", so Major goes by "maj" alone).
var builtinPatterns = []struct {
	name     string
	fullName string
	abbrevs  []string
	pattern  []int
}{
	{"Major", "Major", []string{"maj"}, []int{0, 4, 7}},
	{"Minor", "Minor", []string{"min", "m"}, []int{0, 3, 7}},
	{"Dim", "Diminished", []string{"dim", "°"}, []int{0, 3, 6}},
	{"Aug", "Augmented", []string{"aug", "+"}, []int{0, 4, 8}},
	{"Sixth", "Major Sixth", []string{"6", "maj6"}, []int{0, 4, 7, 9}},
	{"Dom7", "Dominant Seventh", []string{"7", "dom7"}, []int{0, 4, 7, 10}},
	{"Maj7", "Major Seventh", []string{"maj7", "Δ7"}, []int{0, 4, 7, 11}},
	{"Min7", "Minor Seventh", []string{"min7", "m7"}, []int{0, 3, 7, 10}},
	{"Dim7", "Diminished Seventh", []string{"dim7", "°7"}, []int{0, 3, 6, 9}},
	{"HalfDim7", "Half-Diminished Seventh", []string{"ø7", "m7b5"}, []int{0, 3, 6, 10}},
	{"Aug7", "Augmented Seventh", []string{"aug7", "+7"}, []int{0, 4, 8, 10}},
	{"Sus2", "Suspended Second", []string{"sus2"}, []int{0, 2, 7}},
	{"Sus4", "Suspended Fourth", []string{"sus4"}, []int{0, 5, 7}},
}

// mustBuiltin assembles the built-in registry, panicking on any table
// error: the table is fixed at compile time, so a failure here is a
// configuration bug.
func mustBuiltin() *Registry {
	r := NewRegistry()
	for _, p := range builtinPatterns {
		c, err := NewChordClass(p.name, p.fullName, p.abbrevs, p.pattern)
		if err != nil {
			panic(err)
		}
		if err := r.Add(c); err != nil {
			panic(err)
		}
	}
	return r
}
