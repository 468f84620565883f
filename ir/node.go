package ir

import (
	"strings"

	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/token"
)

// Node is a *Tag or a *Group.
type Node interface {
	Span() token.Span
	setSpan(token.Span)
	clone() Node
}

// Tag is one occurrence of a vocabulary reference.
type Tag struct {
	// Text is the tag as written, blanks trimmed.
	Text string
	Pos  token.Span

	Prefix    string
	Entry     *schema.Node
	Value     string
	Extension string
	// Synthetic tags were inserted by definition expansion.
	Synthetic bool

	long  string
	short string
}

func NewTag(text string) *Tag {
	return &Tag{Text: text}
}

func (t *Tag) Span() token.Span {
	return t.Pos
}

func (t *Tag) setSpan(s token.Span) {
	t.Pos = s
}

func (t *Tag) clone() Node {
	return t.Clone()
}

func (t *Tag) Clone() *Tag {
	c := *t
	return &c
}

func (t *Tag) String() string {
	return t.Text
}

func (t *Tag) Resolved() bool {
	return t.Entry != nil
}

// SetForms records the canonical forms of a resolved tag.
func (t *Tag) SetForms(long, short string) {
	t.long = long
	t.short = short
}

// Long returns the long form, or "" for an unresolved tag.
func (t *Tag) Long() string {
	return t.long
}

// Short returns the short form, or "" for an unresolved tag.
func (t *Tag) Short() string {
	return t.short
}

// Term returns the schema term the tag names: the parent of the
// placeholder when the tag carries a value.
func (t *Tag) Term() *schema.Node {
	if t.Entry == nil {
		return nil
	}
	return t.Entry.Term()
}

// Is reports whether t is resolved to a term named name.
func (t *Tag) Is(name string) bool {
	n := t.Term()
	return n != nil && strings.EqualFold(n.Name, name)
}

// Group is a parenthesized collection of tags and groups, or the implicit
// top level collection when Parens is false.
type Group struct {
	Pos      token.Span
	Parens   bool
	Children []Node
	// Source is the parsed text. It is set on roots only.
	Source string
}

// NewGroup returns a parenthesized group holding children.
func NewGroup(children ...Node) *Group {
	return &Group{Parens: true, Children: children}
}

func (g *Group) Span() token.Span {
	return g.Pos
}

func (g *Group) setSpan(s token.Span) {
	g.Pos = s
}

func (g *Group) clone() Node {
	return g.Clone()
}

// Clone returns a deep copy of g.
func (g *Group) Clone() *Group {
	c := &Group{Pos: g.Pos, Parens: g.Parens, Source: g.Source}
	c.Children = make([]Node, len(g.Children))
	for i, ch := range g.Children {
		c.Children[i] = ch.clone()
	}
	return c
}

// Tags returns the tags directly in g.
func (g *Group) Tags() []*Tag {
	var res []*Tag
	for _, c := range g.Children {
		if t, ok := c.(*Tag); ok {
			res = append(res, t)
		}
	}
	return res
}

// Subgroups returns the groups directly in g.
func (g *Group) Subgroups() []*Group {
	var res []*Group
	for _, c := range g.Children {
		if s, ok := c.(*Group); ok {
			res = append(res, s)
		}
	}
	return res
}

func (g *Group) String() string {
	s, _ := g.Form(Original)
	return s
}
