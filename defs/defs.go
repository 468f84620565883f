// Package defs collects named definitions from annotation strings and
// expands references to them.
//
// A definition is a top level group holding a Definition/<label> tag and
// one nested group, its template. A label ending in "/#" takes a value
// that replaces the single "#" of the template when a Def/<label>/<value>
// reference is expanded. Templates may not refer to other definitions, so
// a single expansion pass always terminates.
package defs

import (
	"strings"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/token"
)

// Names of the reserved terms.
const (
	TermDefinition = "Definition"
	TermDef        = "Def"
	TermDefExpand  = "Def-expand"
)

// Entry is one definition.
type Entry struct {
	Name       string
	Template   *ir.Group
	TakesValue bool
	// Pos is the span of the definition group in its source.
	Pos token.Span
}

// Mapper holds the definitions of one scope, keyed case-insensitively.
// It is not safe for concurrent mutation.
type Mapper struct {
	sg      *schema.Group
	entries map[string]*Entry
	order   []*Entry
}

func NewMapper(sg *schema.Group) *Mapper {
	return &Mapper{sg: sg, entries: map[string]*Entry{}}
}

// Get returns the definition labelled name, or nil.
func (m *Mapper) Get(name string) *Entry {
	if m == nil {
		return nil
	}
	return m.entries[strings.ToLower(name)]
}

// Names returns the labels in declaration order.
func (m *Mapper) Names() []string {
	if m == nil {
		return nil
	}
	res := make([]string, len(m.order))
	for i, e := range m.order {
		res[i] = e.Name
	}
	return res
}

func (m *Mapper) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Clone returns a mapper with the same definitions that can be extended
// independently of m. A nil m yields an empty mapper for sg.
func (m *Mapper) Clone(sg *schema.Group) *Mapper {
	c := NewMapper(sg)
	if m == nil {
		return c
	}
	for _, e := range m.order {
		c.add(e)
	}
	return c
}

// add records e unless its label is taken and reports whether it did.
func (m *Mapper) add(e *Entry) bool {
	k := strings.ToLower(e.Name)
	if _, ok := m.entries[k]; ok {
		return false
	}
	m.entries[k] = e
	m.order = append(m.order, e)
	return true
}

// Instantiate returns a copy of the template with value substituted for
// "#". Copied tags are marked synthetic and take the span pos.
func (e *Entry) Instantiate(value string, sg *schema.Group, pos token.Span) *ir.Group {
	g := e.Template.Clone()
	g.Pos = pos
	g.Walk(func(n ir.Node, _ *ir.Group) bool {
		switch x := n.(type) {
		case *ir.Tag:
			x.Synthetic = true
			x.Pos = pos
			if e.TakesValue && strings.Contains(x.Text, schema.PlaceholderName) {
				x.Text = strings.ReplaceAll(x.Text, schema.PlaceholderName, value)
				x.Entry = nil
				x.Prefix, x.Value, x.Extension = "", "", ""
				x.SetForms("", "")
				_ = resolve.Tag(x, sg)
			}
		case *ir.Group:
			x.Pos = pos
		}
		return true
	})
	return g
}

// label splits the value of a Definition, Def or Def-expand tag into the
// definition name and the rest.
func label(t *ir.Tag) (name, rest string) {
	name, rest, _ = strings.Cut(t.Value, "/")
	return name, rest
}

func isReserved(t *ir.Tag) bool {
	return t.Is(TermDefinition) || t.Is(TermDef) || t.Is(TermDefExpand)
}

// directTag returns the first tag directly in g for the term name.
func directTag(g *ir.Group, name string) *ir.Tag {
	for _, t := range g.Tags() {
		if t.Is(name) {
			return t
		}
	}
	return nil
}

// IsDefinition reports whether g directly holds a Definition tag.
func IsDefinition(g *ir.Group) bool {
	return directTag(g, TermDefinition) != nil
}

// IsDefExpand reports whether g directly holds a Def-expand tag.
func IsDefExpand(g *ir.Group) bool {
	return directTag(g, TermDefExpand) != nil
}
