package schema

import (
	"fmt"
	"slices"
	"sort"
)

// Group is the schema set an annotation is validated against: a primary
// schema for unprefixed tags and partners for tags written prefix:Tag.
type Group struct {
	primary  *Schema
	partners map[string]*Schema
}

// NewGroup checks that every prefix is a non-empty run of letters.
func NewGroup(primary *Schema, partners map[string]*Schema) (*Group, error) {
	if primary == nil {
		return nil, fmt.Errorf("%w: no primary schema", ErrPrefix)
	}
	g := &Group{primary: primary, partners: map[string]*Schema{}}
	for p, s := range partners {
		if !validPrefix(p) {
			return nil, fmt.Errorf("%w: %q", ErrPrefix, p)
		}
		if s == nil {
			return nil, fmt.Errorf("%w: %q has no schema", ErrPrefix, p)
		}
		g.partners[p] = s
	}
	return g, nil
}

// Single wraps one schema as a Group without partners.
func Single(s *Schema) *Group {
	return &Group{primary: s, partners: map[string]*Schema{}}
}

func validPrefix(p string) bool {
	if p == "" {
		return false
	}
	for _, r := range p {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Schema returns the schema bound to prefix, the primary one for "".
func (g *Group) Schema(prefix string) *Schema {
	if prefix == "" {
		return g.primary
	}
	return g.partners[prefix]
}

func (g *Group) Primary() *Schema {
	return g.primary
}

// Prefixes returns the partner prefixes, sorted.
func (g *Group) Prefixes() []string {
	res := make([]string, 0, len(g.partners))
	for p := range g.partners {
		res = append(res, p)
	}
	sort.Strings(res)
	return res
}

// All returns the primary schema followed by the partners in prefix order.
func (g *Group) All() []*Schema {
	res := []*Schema{g.primary}
	for _, p := range g.Prefixes() {
		if s := g.partners[p]; !slices.Contains(res, s) {
			res = append(res, s)
		}
	}
	return res
}
