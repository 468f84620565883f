package main

import (
	"context"
	"fmt"
	"strings"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/parse"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	c, _ := s.getChecker()
	if doc == nil || c == nil {
		return nil, nil
	}
	i := doc.lineAt(int(params.Position.Line))
	if i < 0 {
		return nil, nil
	}
	t := tagAt(c, doc.lines[i].text, doc.offset(i, params.Position))
	if t == nil {
		return nil, nil
	}
	text := hoverText(c, doc, t)
	if text == "" {
		return nil, nil
	}
	r := doc.span(i, t.Pos)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &r,
	}, nil
}

// tagAt returns the resolved or unresolved tag of text spanning off.
func tagAt(c *hed.Checker, text string, off int) *ir.Tag {
	g, err := parse.Parse(text)
	if err != nil {
		return nil
	}
	resolve.Tags(g, c.Schemas)
	for t := range g.Flatten() {
		if t.Pos.Start <= off && off <= t.Pos.End {
			return t
		}
	}
	return nil
}

func hoverText(c *hed.Checker, doc *document, t *ir.Tag) string {
	if !t.Resolved() {
		if err := resolve.Tag(t, c.Schemas); err != nil {
			return fmt.Sprintf("**%s**\n\n%s", t.Text, err)
		}
	}
	term := t.Term()
	var parts []string
	parts = append(parts, fmt.Sprintf("**%s**", term.Name))
	if term.Description != "" {
		parts = append(parts, term.Description)
	}
	parts = append(parts, fmt.Sprintf("**Long:** `%s`", t.Long()), fmt.Sprintf("**Short:** `%s`", t.Short()))
	if term.Library != "" {
		parts = append(parts, fmt.Sprintf("**Library:** %s", term.Library))
	}
	if attrs := term.Attrs.String(); attrs != "" {
		parts = append(parts, fmt.Sprintf("**Attributes:** %s", attrs))
	}
	if ph := term.Placeholder(); ph != nil {
		parts = append(parts, valueInfo(ph)...)
	}
	if term.DeprecatedFrom != "" {
		parts = append(parts, fmt.Sprintf("**Deprecated** since %s", term.DeprecatedFrom))
	}
	if t.Is(defs.TermDef) || t.Is(defs.TermDefExpand) {
		if body := definitionBody(c, doc, t); body != "" {
			parts = append(parts, fmt.Sprintf("**Definition:** `%s`", body))
		}
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(ph *schema.Node) []string {
	var res []string
	if len(ph.UnitClasses) != 0 {
		var units []string
		for _, uc := range ph.UnitClasses {
			for _, u := range uc.Units {
				units = append(units, u.Name)
			}
		}
		res = append(res, fmt.Sprintf("**Units:** %s", strings.Join(units, ", ")))
	}
	if len(ph.ValueClasses) != 0 {
		var names []string
		for _, vc := range ph.ValueClasses {
			names = append(names, vc.Name)
		}
		res = append(res, fmt.Sprintf("**Values:** %s", strings.Join(names, ", ")))
	}
	return res
}

// definitionBody finds the definition a Def tag refers to among the lines
// of doc.
func definitionBody(c *hed.Checker, doc *document, t *ir.Tag) string {
	name, _, _ := strings.Cut(t.Value, "/")
	texts := make([]string, len(doc.lines))
	for i, l := range doc.lines {
		texts[i] = l.text
	}
	m, _ := hed.Definitions(c.Schemas, texts...)
	e := m.Get(name)
	if e == nil {
		e = c.Defs.Get(name)
	}
	if e == nil {
		return ""
	}
	body, err := e.Template.Form(ir.Short)
	if err != nil {
		return e.Template.String()
	}
	return body
}
