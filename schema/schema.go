package schema

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/hedtools/go-hed/debug"
)

// Schema is one loaded vocabulary. It is immutable once built and safe to
// share between goroutines.
type Schema struct {
	Version      string
	Library      string
	WithStandard string
	Merged       bool

	roots        []*Node
	byLong       map[string]*Node
	byName       map[string][]*Node
	unitClasses  []*UnitClass
	modifiers    []*UnitModifier
	valueClasses []*ValueClass
	attributes   []*AttributeDef
	required     []*Node
	recommended  []*Node
}

func fold(s string) string {
	return strings.ToLower(s)
}

// Load builds a Schema from its structural representation.
func Load(raw *Raw) (*Schema, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrLoad)
	}
	l := &loader{
		raw: raw,
		s: &Schema{
			Version:      raw.Version,
			Library:      raw.Library,
			WithStandard: raw.WithStandard,
			Merged:       raw.Merged,
		},
		attrs: map[string]*AttributeDef{},
	}
	l.loadAttributes()
	l.loadModifiers()
	l.loadUnitClasses()
	l.loadValueClasses()
	l.loadTags()
	if len(l.errs) != 0 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, errors.Join(l.errs...))
	}
	l.s.index()
	if debug.Schema() {
		debug.Logf("loaded schema %s: %d roots, %d terms\n", l.s.ID(), len(l.s.roots), len(l.s.byLong))
	}
	return l.s, nil
}

type loader struct {
	raw   *Raw
	s     *Schema
	attrs map[string]*AttributeDef
	errs  []error
}

func (l *loader) errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Errorf(format, args...))
}

func (l *loader) loadAttributes() {
	for _, name := range builtinAttrNames() {
		def := &AttributeDef{Name: name}
		l.attrs[name] = def
		l.s.attributes = append(l.s.attributes, def)
	}
	declared := map[string]RawAttribute{}
	for _, ra := range l.raw.Attributes {
		name := CanonicalAttrName(ra.Name)
		if name == "" {
			l.errorf("attribute with empty name")
			continue
		}
		if prev, ok := declared[name]; ok {
			if !reflect.DeepEqual(prev, ra) {
				l.errorf("attribute %s declared twice with different meaning", name)
			}
			continue
		}
		declared[name] = ra
		if def, ok := l.attrs[name]; ok {
			def.Description = ra.Description
			def.Properties = ra.Properties
			continue
		}
		def := &AttributeDef{Name: name, Description: ra.Description, Properties: ra.Properties}
		l.attrs[name] = def
		l.s.attributes = append(l.s.attributes, def)
	}
}

func (l *loader) loadModifiers() {
	seen := map[string]RawUnitModifier{}
	for _, rm := range l.raw.UnitModifiers {
		if prev, ok := seen[rm.Name]; ok {
			if !reflect.DeepEqual(prev, rm) {
				l.errorf("unit modifier %s declared twice with different meaning", rm.Name)
			}
			continue
		}
		seen[rm.Name] = rm
		f, err := checkFactor("unit modifier "+rm.Name, rm.ConversionFactor)
		if err != nil {
			l.errs = append(l.errs, err)
			continue
		}
		l.s.modifiers = append(l.s.modifiers, &UnitModifier{
			Name:        rm.Name,
			Factor:      f,
			Symbol:      rm.Symbol,
			Description: rm.Description,
		})
	}
}

func (l *loader) loadUnitClasses() {
	seen := map[string]RawUnitClass{}
	for _, rc := range l.raw.UnitClasses {
		if prev, ok := seen[rc.Name]; ok {
			if !reflect.DeepEqual(prev, rc) {
				l.errorf("unit class %s declared twice with different meaning", rc.Name)
			}
			continue
		}
		seen[rc.Name] = rc
		c, errs := buildUnitClass(rc)
		l.errs = append(l.errs, errs...)
		c.modifiers = l.s.modifiers
		l.s.unitClasses = append(l.s.unitClasses, c)
	}
}

func (l *loader) loadValueClasses() {
	seen := map[string]RawValueClass{}
	for _, rv := range l.raw.ValueClasses {
		if prev, ok := seen[rv.Name]; ok {
			if !reflect.DeepEqual(prev, rv) {
				l.errorf("value class %s declared twice with different meaning", rv.Name)
			}
			continue
		}
		seen[rv.Name] = rv
		v, err := buildValueClass(rv)
		if err != nil {
			l.errs = append(l.errs, err)
			continue
		}
		l.s.valueClasses = append(l.s.valueClasses, v)
	}
}

func depth(path string) int {
	return strings.Count(path, "/")
}

func (l *loader) loadTags() {
	tags := slices.Clone(l.raw.Tags)
	sort.SliceStable(tags, func(i, j int) bool {
		return depth(tags[i].Path) < depth(tags[j].Path)
	})
	byLong := map[string]*Node{}
	for _, rt := range tags {
		comps := strings.Split(rt.Path, "/")
		if slices.ContainsFunc(comps, func(c string) bool { return strings.TrimSpace(c) == "" }) {
			l.errorf("tag %q: empty path component", rt.Path)
			continue
		}
		key := fold(rt.Path)
		if _, dup := byLong[key]; dup {
			l.errorf("tag %q declared twice", rt.Path)
			continue
		}
		n := &Node{
			Name:        comps[len(comps)-1],
			Long:        rt.Path,
			Description: rt.Description,
		}
		if !l.raw.Merged {
			n.Library = l.raw.Library
		}
		if len(comps) > 1 {
			p := byLong[fold(strings.Join(comps[:len(comps)-1], "/"))]
			if p == nil {
				l.errorf("tag %q: parent is not declared", rt.Path)
				continue
			}
			n.Parent = p
			n.Long = p.Long + "/" + n.Name
			p.Children = append(p.Children, n)
		} else {
			l.s.roots = append(l.s.roots, n)
		}
		byLong[key] = n
		l.tagAttributes(n, rt)
	}
	for _, n := range byLong {
		if n.Placeholder() != nil && len(n.Children) > 1 {
			l.errorf("tag %q: a placeholder must be the only child", n.Long)
		}
	}
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return true, nil
	}
	return strconv.ParseBool(v)
}

func splitList(v string) []string {
	var res []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}

func (l *loader) tagAttributes(n *Node, rt RawTag) {
	keys := make([]string, 0, len(rt.Attributes))
	for k := range rt.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := rt.Attributes[k]
		name := CanonicalAttrName(k)
		if a, ok := ParseAttr(name); ok {
			set, err := parseFlag(v)
			if err != nil {
				l.errorf("tag %q: attribute %s: %w", n.Long, name, err)
				continue
			}
			if set {
				n.Attrs |= a
			}
			continue
		}
		switch name {
		case AttrUnitClass:
			for _, uc := range splitList(v) {
				c := l.s.UnitClass(uc)
				if c == nil {
					l.errorf("tag %q: unknown unit class %q", n.Long, uc)
					continue
				}
				n.UnitClasses = append(n.UnitClasses, c)
			}
		case AttrValueClass:
			for _, vc := range splitList(v) {
				c := l.s.ValueClass(vc)
				if c == nil {
					l.errorf("tag %q: unknown value class %q", n.Long, vc)
					continue
				}
				n.ValueClasses = append(n.ValueClasses, c)
			}
		case AttrSuggestedTag:
			n.SuggestedTags = splitList(v)
		case AttrRelatedTag:
			n.RelatedTags = splitList(v)
		case AttrRooted:
			if n.Parent != nil {
				l.errorf("tag %q: only top level terms may be rooted", n.Long)
				continue
			}
			if l.raw.Library == "" {
				l.errorf("tag %q: rooted terms belong to library schemas", n.Long)
				continue
			}
			n.Rooted = v
		case AttrDeprecatedFrom:
			n.DeprecatedFrom = v
		case AttrInLibrary:
			n.Library = v
		default:
			if _, ok := l.attrs[name]; !ok {
				l.errorf("tag %q: unknown attribute %q", n.Long, k)
				continue
			}
			if n.Properties == nil {
				n.Properties = map[string]string{}
			}
			n.Properties[name] = v
		}
	}
	switch {
	case n.IsPlaceholder():
		n.Attrs |= TakesValue
		if n.Parent == nil {
			l.errorf("tag %q: a placeholder cannot be a root", n.Long)
		}
	case n.Has(TakesValue):
		l.errorf("tag %q: only %q placeholders take values", n.Long, PlaceholderName)
	}
}

func (s *Schema) index() {
	s.byLong = map[string]*Node{}
	s.byName = map[string][]*Node{}
	for n := range s.All() {
		s.byLong[fold(n.Long)] = n
		if !n.IsPlaceholder() {
			k := fold(n.Name)
			s.byName[k] = append(s.byName[k], n)
		}
	}
	s.required, s.recommended = nil, nil
	for n := range s.All() {
		n.short = s.shortForm(n)
		if n.Has(Required) {
			s.required = append(s.required, n)
		}
		if n.Has(Recommended) {
			s.recommended = append(s.recommended, n)
		}
	}
}

// Required returns the terms every annotation must use.
func (s *Schema) Required() []*Node {
	return slices.Clone(s.required)
}

// Recommended returns the terms annotations should use.
func (s *Schema) Recommended() []*Node {
	return slices.Clone(s.recommended)
}

func (s *Schema) shortForm(n *Node) string {
	if n.IsPlaceholder() {
		return n.Parent.Short() + "/" + PlaceholderName
	}
	chain := n.Chain()
	names := make([]string, len(chain))
	for i, c := range chain {
		names[i] = c.Name
	}
	for j := len(names) - 1; j >= 0; j-- {
		m := s.Match(names[j:])
		if len(m) == 1 && m[0] == n {
			return strings.Join(names[j:], "/")
		}
	}
	return n.Long
}

// ID identifies the schema as [library_]version.
func (s *Schema) ID() string {
	if s.Library == "" {
		return s.Version
	}
	return s.Library + "_" + s.Version
}

func (s *Schema) Roots() []*Node {
	return slices.Clone(s.roots)
}

// All yields every term depth first, in declaration order.
func (s *Schema) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool
		walk = func(n *Node) bool {
			if !yield(n) {
				return false
			}
			for _, c := range n.Children {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		for _, r := range s.roots {
			if !walk(r) {
				return
			}
		}
	}
}

// Len is the number of terms, placeholders included.
func (s *Schema) Len() int {
	return len(s.byLong)
}

// Match returns the terms a path fragment can denote. A fragment equal to
// a full long path denotes that term alone; otherwise every term whose
// name equals the last component and whose ancestors end with the
// preceding components matches. Comparison ignores case.
func (s *Schema) Match(comps []string) []*Node {
	if len(comps) == 0 {
		return nil
	}
	if n := s.byLong[fold(strings.Join(comps, "/"))]; n != nil {
		return []*Node{n}
	}
	if last := len(comps) - 1; comps[last] == PlaceholderName {
		var res []*Node
		for _, p := range s.Match(comps[:last]) {
			if ph := p.Placeholder(); ph != nil {
				res = append(res, ph)
			}
		}
		return res
	}
	var res []*Node
	for _, n := range s.byName[fold(comps[len(comps)-1])] {
		if n.endsWith(comps) {
			res = append(res, n)
		}
	}
	return res
}

// FindExact returns the term denoted by a long path or an unambiguous
// short form, or nil.
func (s *Schema) FindExact(path string) *Node {
	m := s.Match(strings.Split(path, "/"))
	if len(m) != 1 {
		return nil
	}
	return m[0]
}

// Lookup returns every term named name, in declaration order.
func (s *Schema) Lookup(name string) []*Node {
	return slices.Clone(s.byName[fold(name)])
}

// IsTerm reports whether any term is named name.
func (s *Schema) IsTerm(name string) bool {
	return len(s.byName[fold(name)]) != 0
}

// AttributeNames returns the sorted names of every known attribute.
func (s *Schema) AttributeNames() []string {
	res := make([]string, len(s.attributes))
	for i, a := range s.attributes {
		res[i] = a.Name
	}
	sort.Strings(res)
	return res
}

func (s *Schema) Attribute(name string) *AttributeDef {
	name = CanonicalAttrName(name)
	for _, a := range s.attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (s *Schema) UnitClass(name string) *UnitClass {
	for _, c := range s.unitClasses {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *Schema) UnitClasses() []*UnitClass {
	return slices.Clone(s.unitClasses)
}

func (s *Schema) UnitModifiers() []*UnitModifier {
	return slices.Clone(s.modifiers)
}

func (s *Schema) ValueClass(name string) *ValueClass {
	for _, c := range s.valueClasses {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *Schema) ValueClasses() []*ValueClass {
	return slices.Clone(s.valueClasses)
}

// WithAttr returns the terms carrying every flag in a.
func (s *Schema) WithAttr(a Attr) []*Node {
	var res []*Node
	for n := range s.All() {
		if n.Has(a) {
			res = append(res, n)
		}
	}
	return res
}
