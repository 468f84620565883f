package main

import (
	"context"
	"sort"
	"strings"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/token"
	"go.lsp.dev/protocol"
)

const maxCompletions = 200

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	c, _ := s.getChecker()
	if doc == nil || c == nil {
		return nil, nil
	}
	i := doc.lineAt(int(params.Position.Line))
	if i < 0 {
		// blank line: complete from scratch
		items := complete(c, nil, "")
		return &protocol.CompletionList{Items: items}, nil
	}
	text := doc.lines[i].text
	off := doc.offset(i, params.Position)
	start := strings.LastIndexAny(text[:off], ",(") + 1
	for start < off && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	word := text[start:off]
	completions := complete(c, doc, word)
	r := doc.span(i, token.Span{Start: start, End: off})
	for j := range completions {
		completions[j].TextEdit = &protocol.TextEdit{Range: r, NewText: completions[j].InsertText}
	}
	return &protocol.CompletionList{
		IsIncomplete: len(completions) == maxCompletions,
		Items:        completions,
	}, nil
}

// complete lists the tags that can replace word: definition names after
// Def/ or Def-expand/, schema terms otherwise.
func complete(c *hed.Checker, doc *document, word string) []protocol.CompletionItem {
	prefix, rest := resolve.SplitPrefix(word)
	sch := c.Schemas.Schema(prefix)
	if sch == nil {
		return nil
	}
	lead := ""
	if prefix != "" {
		lead = prefix + ":"
	}
	lower := strings.ToLower(rest)
	for _, ref := range []string{defs.TermDef, defs.TermDefExpand} {
		if strings.HasPrefix(lower, strings.ToLower(ref)+"/") {
			return completeDefs(c, doc, lead+rest[:len(ref)+1], lower[len(ref)+1:])
		}
	}
	var res []protocol.CompletionItem
	for n := range sch.All() {
		if n.IsPlaceholder() {
			continue
		}
		short := n.Short()
		if !strings.HasPrefix(strings.ToLower(short), lower) && !strings.HasPrefix(strings.ToLower(n.Name), lower) {
			continue
		}
		insert := lead + short
		if n.Placeholder() != nil {
			insert += "/"
		}
		res = append(res, protocol.CompletionItem{
			Label:      lead + short,
			Kind:       protocol.CompletionItemKindClass,
			Detail:     n.Long,
			InsertText: insert,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: n.Description,
			},
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Label < res[j].Label })
	if len(res) > maxCompletions {
		res = res[:maxCompletions]
	}
	return res
}

func completeDefs(c *hed.Checker, doc *document, lead, name string) []protocol.CompletionItem {
	var texts []string
	if doc != nil {
		for _, l := range doc.lines {
			texts = append(texts, l.text)
		}
	}
	m, _ := hed.Definitions(c.Schemas, texts...)
	names := append(m.Names(), c.Defs.Names()...)
	seen := map[string]bool{}
	var res []protocol.CompletionItem
	for _, n := range names {
		k := strings.ToLower(n)
		if seen[k] || !strings.HasPrefix(k, name) {
			continue
		}
		seen[k] = true
		e := m.Get(n)
		if e == nil {
			e = c.Defs.Get(n)
		}
		insert := lead + n
		if e.TakesValue {
			insert += "/"
		}
		res = append(res, protocol.CompletionItem{
			Label:      lead + n,
			Kind:       protocol.CompletionItemKindReference,
			Detail:     e.Template.String(),
			InsertText: insert,
		})
	}
	return res
}
