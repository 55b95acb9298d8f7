package chord

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/tonica/pitch"
)

// Registry is an explicit lookup structure mapping every alias key
// (name, full name, each abbreviation — case-insensitive) and every
// interval fingerprint to its ChordClass. A Registry is mutable while
// being assembled via Add and is safe for concurrent readers once
// assembly is done; the Builtin registry is assembled once at init and
// never touched again.
type Registry struct {
	byKey map[string]ChordClass
	byFP  map[string]ChordClass
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]ChordClass),
		byFP:  make(map[string]ChordClass),
	}
}

// Add registers a class under all of its alias keys and under its
// fingerprint. Collisions are rejected, never silently overwritten:
// two distinct classes may not share an alias nor a fingerprint.
// Re-registering keys that already resolve to an identical pattern is a
// no-op (a class whose name equals its full name is not a conflict).
//
// Errors:
//   - ErrDuplicateChordName    — an alias is taken by a different class.
//   - ErrDuplicateFingerprint  — the pattern is taken by a different class.
func (r *Registry) Add(c ChordClass) error {
	fp := c.Fingerprint()
	if prev, ok := r.byFP[fp]; ok && prev.name != c.name {
		return fmt.Errorf("%w: %s and %s both encode %s", ErrDuplicateFingerprint, prev.name, c.name, fp)
	}
	keys := append([]string{c.name, c.fullName}, c.abbrevs...)
	for _, key := range keys {
		k := keyOf(key)
		if prev, ok := r.byKey[k]; ok && prev.name != c.name {
			return fmt.Errorf("%w: %q already resolves to %s", ErrDuplicateChordName, key, prev.name)
		}
	}
	for _, key := range keys {
		r.byKey[keyOf(key)] = c
	}
	r.byFP[fp] = c
	return nil
}

// ByName resolves a name, full name, or abbreviation.
//
// Errors:
//   - ErrUnknownChordName — no class is registered under the key.
func (r *Registry) ByName(name string) (ChordClass, error) {
	c, ok := r.byKey[keyOf(name)]
	if !ok {
		return ChordClass{}, fmt.Errorf("%w: %q", ErrUnknownChordName, name)
	}
	return c, nil
}

// ByIntervals matches an arbitrary interval set against the registered
// patterns via the shared fingerprint encoding. Matching is exact-set:
// a pattern with one tone more or less does not match.
//
// Errors:
//   - ErrUnmatchedIntervals — no registered pattern has the fingerprint.
func (r *Registry) ByIntervals(ivs []pitch.Interval) (ChordClass, error) {
	fp := fingerprint(ivs)
	c, ok := r.byFP[fp]
	if !ok {
		return ChordClass{}, fmt.Errorf("%w: fingerprint %s", ErrUnmatchedIntervals, fp)
	}
	return c, nil
}

// Classes lists every registered class once, ordered by name.
func (r *Registry) Classes() []ChordClass {
	out := make([]ChordClass, 0, len(r.byFP))
	for _, c := range r.byFP {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// keyOf folds an alias into its case-insensitive registry form.
func keyOf(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var (
	builtinOnce sync.Once
	builtinReg  *Registry
)

// Builtin returns the process-wide built-in table, assembled on first
// use and read-only afterwards. A collision inside the fixed table is a
// configuration bug, not a runtime case, and panics at first use.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtinReg = mustBuiltin()
	})
	return builtinReg
}
