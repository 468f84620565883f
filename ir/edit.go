package ir

import (
	"slices"
)

// find returns the group directly holding n and the index of n in it.
func (g *Group) find(n Node) (*Group, int) {
	for i, c := range g.Children {
		if c == n {
			return g, i
		}
		if s, ok := c.(*Group); ok {
			if p, j := s.find(n); p != nil {
				return p, j
			}
		}
	}
	return nil, -1
}

// Parent returns the group in g's tree directly holding n, or nil.
func (g *Group) Parent(n Node) *Group {
	p, _ := g.find(n)
	return p
}

// Contains reports whether n is g or lies in g's tree.
func (g *Group) Contains(n Node) bool {
	if Node(g) == n {
		return true
	}
	p, _ := g.find(n)
	return p != nil
}

// ReplaceTag replaces old, anywhere in g's tree, by repl. The replacement
// takes over the source span of old. It reports whether old was found.
func (g *Group) ReplaceTag(old, repl Node) bool {
	p, i := g.find(old)
	if p == nil {
		return false
	}
	repl.setSpan(old.Span())
	p.Children[i] = repl
	return true
}

// RemoveTag removes t from g's tree and reports whether it was found.
func (g *Group) RemoveTag(t *Tag) bool {
	p, i := g.find(t)
	if p == nil {
		return false
	}
	p.Children = slices.Delete(p.Children, i, i+1)
	return true
}

// RemoveGroups removes every group below g for which pred holds, without
// looking inside removed groups. It returns the number removed.
func (g *Group) RemoveGroups(pred func(*Group) bool) int {
	count := 0
	g.Children = slices.DeleteFunc(g.Children, func(c Node) bool {
		s, ok := c.(*Group)
		if !ok {
			return false
		}
		if pred(s) {
			count++
			return true
		}
		count += s.RemoveGroups(pred)
		return false
	})
	return count
}

// Append adds nodes at the end of g. Appended nodes keep their spans; use
// zero spans for nodes that do not come from g's source.
func (g *Group) Append(ns ...Node) {
	g.Children = append(g.Children, ns...)
}
