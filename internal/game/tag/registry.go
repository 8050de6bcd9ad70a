package tag

import "strings"

// Registry is the read-only tag catalog: definitions, aliases and
// synergies. Constructed once at startup and safe to share across
// threads; no method mutates state after NewRegistry returns.
type Registry struct {
	defs      map[string]*Definition
	aliases   map[string]string
	synergies []Synergy
}

// NewRegistry builds a Registry from definitions and synergies. Names
// and aliases are canonicalized to lowercase. A later definition with
// the same name replaces an earlier one, which lets a loaded catalog
// override the built-in one entry at a time.
func NewRegistry(defs []Definition, synergies []Synergy) *Registry {
	r := &Registry{
		defs:      make(map[string]*Definition, len(defs)),
		aliases:   make(map[string]string),
		synergies: make([]Synergy, len(synergies)),
	}
	for i := range defs {
		d := defs[i]
		d.Name = strings.ToLower(d.Name)
		r.defs[d.Name] = &d
		for _, a := range d.Aliases {
			r.aliases[strings.ToLower(a)] = d.Name
		}
	}
	copy(r.synergies, synergies)
	return r
}

// Lookup resolves a tag name, aliases first, case-insensitively.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	key := strings.ToLower(name)
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	d, ok := r.defs[key]
	return d, ok
}

// DefaultParams returns a copy of the tag's default parameters,
// nil if the tag is unknown.
func (r *Registry) DefaultParams(name string) map[string]float64 {
	d, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(d.Defaults))
	for k, v := range d.Defaults {
		out[k] = v
	}
	return out
}

// Conflicts returns the conflict set of a tag, nil if unknown.
func (r *Registry) Conflicts(name string) []string {
	d, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	return append([]string(nil), d.Conflicts...)
}

// Synergy returns the parameter delta for the unordered tag pair
// (a, b), if one is defined.
func (r *Registry) Synergy(a, b string) (Synergy, bool) {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for _, s := range r.synergies {
		if (s.A == la && s.B == lb) || (s.A == lb && s.B == la) {
			return s, true
		}
	}
	return Synergy{}, false
}

// Synergies returns all registered synergies.
func (r *Registry) Synergies() []Synergy {
	return append([]Synergy(nil), r.synergies...)
}

// Len returns the number of canonical definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
