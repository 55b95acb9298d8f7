package scale

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ScaleRegistry is an explicit name→Scale lookup, case-insensitive on
// the key. Like the chord registry it is assembled once and read-only
// afterwards; collisions are rejected, never silently overwritten.
type ScaleRegistry struct {
	byName map[string]*Scale
}

// NewScaleRegistry returns an empty registry.
func NewScaleRegistry() *ScaleRegistry {
	return &ScaleRegistry{byName: make(map[string]*Scale)}
}

// Add registers a scale under its own name.
//
// Errors:
//   - ErrDuplicateScaleName — the name is taken by a different scale.
func (r *ScaleRegistry) Add(s *Scale) error {
	return r.Alias(s.name, s)
}

// Alias registers a scale under an additional name ("Natural Minor" for
// the Aeolian mode).
//
// Errors:
//   - ErrDuplicateScaleName — the name is taken by a different scale.
func (r *ScaleRegistry) Alias(name string, s *Scale) error {
	k := strings.ToLower(strings.TrimSpace(name))
	if prev, ok := r.byName[k]; ok && prev != s {
		return fmt.Errorf("%w: %q already resolves to %s", ErrDuplicateScaleName, name, prev.name)
	}
	r.byName[k] = s
	return nil
}

// ByName resolves a registered scale name.
//
// Errors:
//   - ErrUnknownScaleName — no scale registered under the name.
func (r *ScaleRegistry) ByName(name string) (*Scale, error) {
	s, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScaleName, name)
	}
	return s, nil
}

// Names lists every registered key, sorted.
func (r *ScaleRegistry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for k := range r.byName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var (
	builtinScalesOnce sync.Once
	builtinScalesReg  *ScaleRegistry
)

// BuiltinScales returns the fixed scale table, assembled on first use
// and read-only afterwards. As with chords, a collision inside the
// fixed table is a configuration bug and panics at first use.
func BuiltinScales() *ScaleRegistry {
	builtinScalesOnce.Do(func() {
		builtinScalesReg = mustBuiltinScales()
	})
	return builtinScalesReg
}
