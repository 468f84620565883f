package schema

import (
	"maps"
	"strings"
)

// Raw exports s back to its structural representation. Loading the
// result yields an equivalent schema.
func (s *Schema) Raw() *Raw {
	r := &Raw{
		Version:      s.Version,
		Library:      s.Library,
		WithStandard: s.WithStandard,
		Merged:       s.Merged,
	}
	for n := range s.All() {
		r.Tags = append(r.Tags, n.raw(s.Merged))
	}
	for _, c := range s.unitClasses {
		r.UnitClasses = append(r.UnitClasses, c.raw())
	}
	for _, m := range s.modifiers {
		r.UnitModifiers = append(r.UnitModifiers, m.raw())
	}
	for _, v := range s.valueClasses {
		r.ValueClasses = append(r.ValueClasses, v.raw())
	}
	for _, a := range s.attributes {
		if builtinAttr(a.Name) && a.Description == "" && len(a.Properties) == 0 {
			continue
		}
		r.Attributes = append(r.Attributes, RawAttribute{
			Name:        a.Name,
			Description: a.Description,
			Properties:  a.Properties,
		})
	}
	return r
}

func builtinAttr(name string) bool {
	if _, ok := ParseAttr(name); ok {
		return true
	}
	return isValuedAttr(name)
}

func classNames[T any](cs []T, name func(T) string) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = name(c)
	}
	return strings.Join(parts, ",")
}

func (n *Node) raw(merged bool) RawTag {
	rt := RawTag{Path: n.Long, Description: n.Description}
	a := map[string]string{}
	for _, an := range attrNames {
		if an.a == TakesValue && n.IsPlaceholder() {
			continue
		}
		if n.Has(an.a) {
			a[an.name] = "true"
		}
	}
	if len(n.UnitClasses) != 0 {
		a[AttrUnitClass] = classNames(n.UnitClasses, func(c *UnitClass) string { return c.Name })
	}
	if len(n.ValueClasses) != 0 {
		a[AttrValueClass] = classNames(n.ValueClasses, func(c *ValueClass) string { return c.Name })
	}
	if len(n.SuggestedTags) != 0 {
		a[AttrSuggestedTag] = strings.Join(n.SuggestedTags, ",")
	}
	if len(n.RelatedTags) != 0 {
		a[AttrRelatedTag] = strings.Join(n.RelatedTags, ",")
	}
	if n.Rooted != "" {
		a[AttrRooted] = n.Rooted
	}
	if n.DeprecatedFrom != "" {
		a[AttrDeprecatedFrom] = n.DeprecatedFrom
	}
	if merged && n.Library != "" {
		a[AttrInLibrary] = n.Library
	}
	maps.Copy(a, n.Properties)
	if len(a) != 0 {
		rt.Attributes = a
	}
	return rt
}
