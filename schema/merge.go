package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// MergeLibrary combines s, a standard schema, with the library schema lib
// into a new schema. Neither input is modified.
//
// A library root declared rooted, or named in attach, is grafted onto the
// standard term it names: its children become children of that term. Any
// other library root is added as a new root. Name collisions at the point
// of attachment, and table entries redeclared with a different meaning,
// are reported as ErrConflict.
func (s *Schema) MergeLibrary(lib *Schema, attach map[string]string) (*Schema, error) {
	if lib.Library == "" {
		return nil, fmt.Errorf("%w: schema %s is not a library", ErrConflict, lib.ID())
	}
	if s.Library != "" || lib.Merged {
		return nil, fmt.Errorf("%w: only a standard schema and an unmerged library can be merged", ErrConflict)
	}
	out := s.Raw()
	out.Version = lib.Version
	out.Library = lib.Library
	out.WithStandard = s.Version
	out.Merged = true

	libRaw := lib.Raw()
	var errs []error
	out.UnitClasses = union(out.UnitClasses, libRaw.UnitClasses, "unit class",
		func(c RawUnitClass) string { return c.Name }, &errs)
	out.UnitModifiers = union(out.UnitModifiers, libRaw.UnitModifiers, "unit modifier",
		func(m RawUnitModifier) string { return m.Name }, &errs)
	out.ValueClasses = union(out.ValueClasses, libRaw.ValueClasses, "value class",
		func(v RawValueClass) string { return v.Name }, &errs)
	out.Attributes = union(out.Attributes, libRaw.Attributes, "attribute",
		func(a RawAttribute) string { return a.Name }, &errs)

	grafts := map[*Node]*Node{}
	for _, r := range lib.roots {
		target := r.Rooted
		if t, ok := attach[r.Name]; ok {
			target = t
		}
		if target == "" {
			for _, b := range s.roots {
				if strings.EqualFold(b.Name, r.Name) {
					errs = append(errs, fmt.Errorf("library root %q collides with a standard root", r.Name))
				}
			}
			continue
		}
		b := s.byLong[fold(target)]
		if b == nil {
			errs = append(errs, fmt.Errorf("library root %q: standard term %q does not exist", r.Name, target))
			continue
		}
		for _, c := range r.Children {
			if b.Child(c.Name) != nil {
				errs = append(errs, fmt.Errorf("library term %q collides with %q", c.Long, b.Long+"/"+c.Name))
			}
		}
		grafts[r] = b
	}
	if len(errs) != 0 {
		return nil, fmt.Errorf("%w: %w", ErrConflict, errors.Join(errs...))
	}

	for n := range lib.All() {
		if _, ok := grafts[n]; ok {
			continue
		}
		rt := n.raw(false)
		if rt.Attributes == nil {
			rt.Attributes = map[string]string{}
		}
		root := n.Chain()[0]
		if b, ok := grafts[root]; ok {
			rt.Path = b.Long + strings.TrimPrefix(n.Long, root.Long)
		}
		delete(rt.Attributes, AttrRooted)
		rt.Attributes[AttrInLibrary] = lib.Library
		out.Tags = append(out.Tags, rt)
	}
	return Load(out)
}

func union[T any](base, add []T, what string, name func(T) string, errs *[]error) []T {
	idx := map[string]int{}
	for i, b := range base {
		idx[name(b)] = i
	}
	for _, a := range add {
		i, ok := idx[name(a)]
		if !ok {
			idx[name(a)] = len(base)
			base = append(base, a)
			continue
		}
		if !reflect.DeepEqual(base[i], a) {
			*errs = append(*errs, fmt.Errorf("%s %s declared with different meaning", what, name(a)))
		}
	}
	return base
}
