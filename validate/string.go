package validate

import (
	"strings"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/schema"
)

// delimiters may not appear inside tag text. A tree built by the parser
// never holds them; trees built by hand might.
const delimiters = ",()[]{}~\""

func (r *run) stringPass() {
	r.repeated(r.root)
	r.root.Walk(func(n ir.Node, _ *ir.Group) bool {
		switch x := n.(type) {
		case *ir.Tag:
			r.structure(x)
		case *ir.Group:
			if x.Parens && len(x.Children) == 0 {
				r.add(issue.New(issue.CodeParse, x.Pos, "", "empty group"))
			}
			r.repeated(x)
		}
		return true
	})
	r.unique()
}

func (r *run) structure(t *ir.Tag) {
	if strings.TrimSpace(t.Text) == "" {
		r.add(issue.New(issue.CodeEmptyTag, t.Pos, t.Text, "empty tag"))
		return
	}
	if i := strings.IndexAny(t.Text, delimiters); i >= 0 {
		r.add(issue.Newf(issue.CodeParse, t.Pos, t.Text, "tag %q holds the delimiter %q", t.Text, t.Text[i]))
	}
}

// repeated reports children of g equal to an earlier sibling.
func (r *run) repeated(g *ir.Group) {
	seen := make(map[string]bool, len(g.Children))
	for _, c := range g.Children {
		k := ir.Key(c)
		if !seen[k] {
			seen[k] = true
			continue
		}
		tag, what := "", "group"
		if t, ok := c.(*ir.Tag); ok {
			tag, what = t.Text, "tag"
		}
		r.add(issue.Newf(issue.CodeDuplicateTag, c.Span(), tag, "%s %s repeated in its group", what, c))
	}
}

// unique reports every use of a unique term after the first. Tags inside
// definitions do not count.
func (r *run) unique() {
	seen := map[*schema.Node]bool{}
	for t := range r.root.Flatten() {
		term := t.Term()
		if term == nil || r.inDefs[t] || !term.Has(schema.Unique) {
			continue
		}
		if seen[term] {
			r.add(issue.Newf(issue.CodeUniqueViolation, t.Pos, t.Text, "%s may appear only once", term.Name))
			continue
		}
		seen[term] = true
	}
}
