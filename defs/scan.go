package defs

import (
	"strings"

	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
)

// Scan collects the definitions of sources, in order. The first of two
// definitions with the same label wins. Definitions whose templates refer
// to other definitions are dropped.
func Scan(sg *schema.Group, sources ...*ir.Group) (*Mapper, issue.List) {
	m := NewMapper(sg)
	return m, m.Scan(sources...)
}

// Scan adds the definitions of sources to m. Labels already in m are
// reported as duplicates.
func (m *Mapper) Scan(sources ...*ir.Group) issue.List {
	var issues issue.List
	for _, src := range sources {
		resolve.Tags(src, m.sg)
		for _, g := range src.Subgroups() {
			if !IsDefinition(g) {
				continue
			}
			e, is := definition(g)
			issues = append(issues, is...)
			if e == nil {
				continue
			}
			if !m.add(e) {
				issues = append(issues, issue.Newf(issue.CodeDuplicateDefinition, g.Pos, e.Name,
					"definition %q is declared more than once", e.Name))
				continue
			}
			if debug.Expand() {
				debug.Logf("definition %s takes value %v: %s\n", e.Name, e.TakesValue, e.Template)
			}
		}
	}
	return issues
}

// definition checks the shape of a definition group and builds its entry.
func definition(g *ir.Group) (*Entry, issue.List) {
	tags, subs := g.Tags(), g.Subgroups()
	if len(tags) != 1 || len(subs) != 1 {
		return nil, issue.List{issue.New(issue.CodeDefinitionInvalid, g.Pos, "",
			"a definition holds exactly one Definition tag and one group")}
	}
	dt := tags[0]
	name, rest := label(dt)
	if name == "" || (rest != "" && rest != schema.PlaceholderName) || strings.Contains(name, schema.PlaceholderName) {
		return nil, issue.List{issue.Newf(issue.CodeDefinitionInvalid, dt.Pos, dt.Text,
			"%q is not a valid definition label", dt.Value)}
	}
	e := &Entry{
		Name:       name,
		Template:   subs[0].Clone(),
		TakesValue: rest == schema.PlaceholderName,
		Pos:        g.Pos,
	}
	var issues issue.List
	placeholders := 0
	for t := range e.Template.Flatten() {
		switch {
		case t.Is(TermDef) || t.Is(TermDefExpand):
			issues = append(issues, issue.Newf(issue.CodeCircularDefinition, t.Pos, t.Text,
				"definition %q refers to another definition", name))
		case t.Is(TermDefinition):
			issues = append(issues, issue.Newf(issue.CodeDefinitionInvalid, t.Pos, t.Text,
				"definition %q contains a nested definition", name))
		}
		placeholders += strings.Count(t.Text, schema.PlaceholderName)
	}
	switch {
	case e.TakesValue && placeholders != 1:
		issues = append(issues, issue.Newf(issue.CodeDefinitionInvalid, g.Pos, dt.Text,
			"definition %q takes a value so its template needs exactly one %q, found %d", name, schema.PlaceholderName, placeholders))
	case !e.TakesValue && placeholders != 0:
		issues = append(issues, issue.Newf(issue.CodeDefinitionInvalid, g.Pos, dt.Text,
			"definition %q takes no value but its template holds %q", name, schema.PlaceholderName))
	}
	if len(issues) != 0 {
		return nil, issues
	}
	return e, nil
}
