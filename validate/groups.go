package validate

import (
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/schema"
)

func (r *run) groupPass() {
	r.placement()
	r.presence()
	r.definitions()
}

// placement checks the grouping attributes: top level terms sit in a
// group directly below the root and alone there, tag group terms sit in
// some group.
func (r *run) placement() {
	top := map[*ir.Group]bool{}
	for _, g := range r.root.Subgroups() {
		top[g] = true
	}
	r.root.Walk(func(n ir.Node, parent *ir.Group) bool {
		t, ok := n.(*ir.Tag)
		if !ok || !t.Resolved() {
			return true
		}
		term := t.Term()
		if term.Has(schema.TopLevelTagGroup) && !top[parent] {
			r.add(issue.Newf(issue.CodeTopLevelGroup, t.Pos, t.Text, "%s must be in a top level group", term.Name))
		}
		if term.Has(schema.TagGroup) && parent == r.root {
			r.add(issue.Newf(issue.CodeTopLevelGroup, t.Pos, t.Text, "%s must be in a group", term.Name))
		}
		return true
	})
	for g := range r.root.Groups() {
		n := 0
		for _, t := range g.Tags() {
			if !t.Resolved() || !t.Term().Has(schema.TopLevelTagGroup) {
				continue
			}
			if n++; n > 1 {
				r.add(issue.Newf(issue.CodeTopLevelGroup, t.Pos, t.Text,
					"%s shares its group with another top level term", t.Term().Name))
			}
		}
	}
}

// presence reports required terms missing from the string and, when
// enabled, recommended ones.
func (r *run) presence() {
	if !r.v.checkRequired && !r.v.checkRecommended {
		return
	}
	used := map[*schema.Node]bool{}
	for t := range r.root.Flatten() {
		for n := t.Entry; n != nil; n = n.Parent {
			used[n] = true
		}
	}
	for _, s := range r.v.sg.All() {
		if r.v.checkRequired {
			for _, n := range s.Required() {
				if !used[n] {
					r.add(issue.Newf(issue.CodeMissingRequiredTag, r.root.Pos, "", "required tag %s is missing", n.Short()))
				}
			}
		}
		if r.v.checkRecommended {
			for _, n := range s.Recommended() {
				if !used[n] {
					r.add(issue.Newf(issue.CodeMissingRecommendedTag, r.root.Pos, "", "recommended tag %s is missing", n.Short()))
				}
			}
		}
	}
}

// definitions checks the definitions declared in the string and every Def
// reference against them and the external definitions.
func (r *run) definitions() {
	m := r.v.defs.Clone(r.v.sg)
	r.add(m.Scan(r.root)...)
	r.add(m.CheckRefs(r.root)...)
}
