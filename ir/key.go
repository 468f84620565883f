package ir

import (
	"sort"
	"strings"
)

// Key renders n for comparison: lower case long forms, or the written text
// of unresolved tags, with the children of every group sorted. Nodes with
// equal keys have the same meaning.
func Key(n Node) string {
	switch x := n.(type) {
	case *Tag:
		if !x.Resolved() {
			return "?" + strings.ToLower(x.Text)
		}
		return strings.ToLower(x.long)
	case *Group:
		parts := make([]string, len(x.Children))
		for i, c := range x.Children {
			parts[i] = Key(c)
		}
		sort.Strings(parts)
		return "(" + strings.Join(parts, ",") + ")"
	}
	return ""
}
