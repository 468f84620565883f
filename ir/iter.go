package ir

import (
	"iter"
)

// Flatten yields every tag of g's tree depth first, left to right.
func (g *Group) Flatten() iter.Seq[*Tag] {
	return func(yield func(*Tag) bool) {
		g.flatten(yield)
	}
}

func (g *Group) flatten(yield func(*Tag) bool) bool {
	for _, c := range g.Children {
		switch x := c.(type) {
		case *Tag:
			if !yield(x) {
				return false
			}
		case *Group:
			if !x.flatten(yield) {
				return false
			}
		}
	}
	return true
}

// Groups yields g and then every group below it, depth first.
func (g *Group) Groups() iter.Seq[*Group] {
	return func(yield func(*Group) bool) {
		g.groups(yield)
	}
}

func (g *Group) groups(yield func(*Group) bool) bool {
	if !yield(g) {
		return false
	}
	for _, s := range g.Subgroups() {
		if !s.groups(yield) {
			return false
		}
	}
	return true
}

// Walk calls f for every node below g, depth first, with the group holding
// it. Returning false from f skips the children of a group.
func (g *Group) Walk(f func(n Node, parent *Group) bool) {
	for _, c := range g.Children {
		if !f(c, g) {
			continue
		}
		if s, ok := c.(*Group); ok {
			s.Walk(f)
		}
	}
}
