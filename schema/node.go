package schema

import (
	"strings"
)

// PlaceholderName is the name of the child term standing for a value.
const PlaceholderName = "#"

// Node is one vocabulary term. The tree owns all nodes; Parent is a back
// reference.
type Node struct {
	Name     string
	Long     string
	Parent   *Node
	Children []*Node

	Attrs        Attr
	UnitClasses  []*UnitClass
	ValueClasses []*ValueClass
	Description  string

	// Library is the library the term was declared in, "" for the
	// standard vocabulary.
	Library        string
	Rooted         string
	DeprecatedFrom string
	SuggestedTags  []string
	RelatedTags    []string
	// Properties holds attribute values not modelled above.
	Properties map[string]string

	short string
}

func (n *Node) Has(a Attr) bool {
	return n.Attrs.Has(a)
}

func (n *Node) IsPlaceholder() bool {
	return n.Name == PlaceholderName
}

// Placeholder returns the "#" child of n, or nil.
func (n *Node) Placeholder() *Node {
	for _, c := range n.Children {
		if c.IsPlaceholder() {
			return c
		}
	}
	return nil
}

// Child returns the child named name, compared case-insensitively.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// Short returns the shortest ancestor-chain suffix identifying n uniquely
// within its schema. For a placeholder it is the short form of the parent
// followed by "/#".
func (n *Node) Short() string {
	if n.short == "" {
		return n.Long
	}
	return n.short
}

// Term returns the node that names n in annotation strings: the parent of
// a placeholder, n itself otherwise.
func (n *Node) Term() *Node {
	if n.IsPlaceholder() && n.Parent != nil {
		return n.Parent
	}
	return n
}

// ExtensionAllowed reports whether free text may be appended below n.
// The attribute is inherited from ancestors; terms taking a value never
// accept extensions.
func (n *Node) ExtensionAllowed() bool {
	if n.Placeholder() != nil || n.IsPlaceholder() {
		return false
	}
	for c := n; c != nil; c = c.Parent {
		if c.Has(ExtensionAllowed) {
			return true
		}
	}
	return false
}

// IsA reports whether n is a or one of its descendants.
func (n *Node) IsA(a *Node) bool {
	for c := n; c != nil; c = c.Parent {
		if c == a {
			return true
		}
	}
	return false
}

// Chain returns the ancestor chain of n, root first.
func (n *Node) Chain() []*Node {
	var res []*Node
	for c := n; c != nil; c = c.Parent {
		res = append(res, c)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func (n *Node) endsWith(comps []string) bool {
	c := n
	for i := len(comps) - 1; i >= 0; i-- {
		if c == nil || !strings.EqualFold(c.Name, comps[i]) {
			return false
		}
		c = c.Parent
	}
	return true
}

func (n *Node) String() string {
	return n.Long
}
