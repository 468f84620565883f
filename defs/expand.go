package defs

import (
	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
)

type expandOpts struct {
	keepLabel bool
}

type ExpandOption func(*expandOpts)

// KeepLabel expands Def/X to (Def-expand/X, (template)) instead of the
// bare template.
func KeepLabel() ExpandOption {
	return func(o *expandOpts) { o.keepLabel = true }
}

// Expand returns a copy of g in which every Def reference to a known
// definition is replaced by its template. Definition and Def-expand groups
// are left as they are. References that cannot be expanded stay in place
// and are reported.
func Expand(g *ir.Group, m *Mapper, sg *schema.Group, opts ...ExpandOption) (*ir.Group, issue.List) {
	eOpts := &expandOpts{}
	for _, f := range opts {
		f(eOpts)
	}
	out := g.Clone()
	resolve.Tags(out, sg)
	var issues issue.List
	expandGroup(out, m, sg, eOpts, &issues)
	return out, issues
}

func expandGroup(g *ir.Group, m *Mapper, sg *schema.Group, opts *expandOpts, issues *issue.List) {
	for i, c := range g.Children {
		switch x := c.(type) {
		case *ir.Group:
			if IsDefinition(x) || IsDefExpand(x) {
				continue
			}
			expandGroup(x, m, sg, opts, issues)
		case *ir.Tag:
			if !x.Is(TermDef) {
				continue
			}
			e, is := lookup(x, m)
			if is != nil {
				*issues = append(*issues, *is)
				continue
			}
			_, value := label(x)
			body := e.Instantiate(value, sg, x.Pos)
			var repl ir.Node = body
			if opts.keepLabel {
				lt := &ir.Tag{Text: TermDefExpand + "/" + x.Value, Pos: x.Pos, Synthetic: true}
				_ = resolve.Tag(lt, sg)
				wrap := ir.NewGroup(lt, body)
				wrap.Pos = x.Pos
				repl = wrap
			}
			if debug.Expand() {
				debug.Logf("expand %s -> %s\n", x.Text, body)
			}
			g.Children[i] = repl
		}
	}
}

// lookup finds the definition a Def or Def-expand tag refers to and
// checks the presence of its value.
func lookup(t *ir.Tag, m *Mapper) (*Entry, *issue.Issue) {
	name, value := label(t)
	e := m.Get(name)
	if e == nil {
		is := issue.Newf(issue.CodeUnknownDefinition, t.Pos, t.Text, "no definition named %q", name)
		return nil, &is
	}
	if e.TakesValue != (value != "") {
		msg := "definition %q takes a value"
		if !e.TakesValue {
			msg = "definition %q takes no value"
		}
		is := issue.Newf(issue.CodeDefinitionValueMismatch, t.Pos, t.Text, msg, e.Name)
		return nil, &is
	}
	return e, nil
}

// CheckRefs reports Def references to unknown definitions or with the
// wrong value presence, and Def-expand groups whose content differs from
// their definition. Definition groups are not inspected.
func (m *Mapper) CheckRefs(g *ir.Group) issue.List {
	var issues issue.List
	resolve.Tags(g, m.sg)
	m.checkGroup(g, &issues)
	return issues
}

func (m *Mapper) checkGroup(g *ir.Group, issues *issue.List) {
	for _, c := range g.Children {
		switch x := c.(type) {
		case *ir.Tag:
			if x.Is(TermDef) {
				if _, is := lookup(x, m); is != nil {
					*issues = append(*issues, *is)
				}
			}
		case *ir.Group:
			if IsDefinition(x) {
				continue
			}
			if IsDefExpand(x) {
				m.checkDefExpand(x, issues)
				continue
			}
			m.checkGroup(x, issues)
		}
	}
}

func (m *Mapper) checkDefExpand(g *ir.Group, issues *issue.List) {
	t := directTag(g, TermDefExpand)
	e, is := lookup(t, m)
	if is != nil {
		*issues = append(*issues, *is)
		return
	}
	subs := g.Subgroups()
	if len(g.Tags()) != 1 || len(subs) > 1 {
		*issues = append(*issues, issue.Newf(issue.CodeDefinitionInvalid, g.Pos, t.Text,
			"a Def-expand group holds one Def-expand tag and at most one group"))
		return
	}
	_, value := label(t)
	want := ir.Key(e.Instantiate(value, m.sg, g.Pos))
	got := "()"
	if len(subs) == 1 {
		got = ir.Key(subs[0])
	}
	if got != want {
		*issues = append(*issues, issue.Newf(issue.CodeUnknownDefinition, g.Pos, t.Text,
			"content of %s differs from definition %q", t.Text, e.Name))
	}
}
