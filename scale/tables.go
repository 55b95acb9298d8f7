package scale

// churchModes names the seven rotations of the diatonic major scale.
var churchModes = []string{
	"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian",
}

// builtinScales is the fixed scale table.
var builtinScales = []struct {
	name      string
	offsets   []int
	modeNames []string
}{
	{"Diatonic Major", []int{0, 2, 4, 5, 7, 9, 11}, churchModes},
	{"Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}, nil},
	{"Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}, nil},
	{"Pentatonic Major", []int{0, 2, 4, 7, 9}, nil},
	{"Pentatonic Minor", []int{0, 3, 5, 7, 10}, nil},
	{"Blues", []int{0, 3, 5, 6, 7, 10}, nil},
}

// mustBuiltinScales assembles the built-in registry: every scale under
// its name, the diatonic major additionally under "Major" and its seven
// church-mode names, and the Aeolian mode under "Natural Minor" and
// "Minor" (the relative-minor relationship: its parent is the major
// scale). Panics on table errors — fixed tables failing is a
// configuration bug.
func mustBuiltinScales() *ScaleRegistry {
	r := NewScaleRegistry()
	for _, t := range builtinScales {
		s, err := NewScale(t.name, t.offsets, t.modeNames)
		if err != nil {
			panic(err)
		}
		if err = r.Add(s); err != nil {
			panic(err)
		}
		if t.modeNames == nil {
			continue
		}
		for _, m := range s.modes {
			if err = r.Add(m); err != nil {
				panic(err)
			}
		}
	}

	major, err := r.ByName("Diatonic Major")
	if err != nil {
		panic(err)
	}
	aeolian, err := major.Mode(5)
	if err != nil {
		panic(err)
	}
	for _, alias := range []struct {
		name string
		s    *Scale
	}{
		{"Major", major},
		{"Natural Minor", aeolian},
		{"Minor", aeolian},
	} {
		if err = r.Alias(alias.name, alias.s); err != nil {
			panic(err)
		}
	}
	return r
}
