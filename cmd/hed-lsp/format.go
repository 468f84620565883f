package main

import (
	"context"
	"strings"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/token"
	"go.lsp.dev/protocol"
)

// Formatting rewrites every line that resolves in short form. Lines with
// problems are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	c, _ := s.getChecker()
	if doc == nil || c == nil {
		return nil, nil
	}

	edits := []protocol.TextEdit{}
	for i, l := range doc.lines {
		lead := l.text[:len(l.text)-len(strings.TrimLeft(l.text, " \t"))]
		out, issues := c.Convert(l.text, ir.Short)
		if len(issues) != 0 {
			continue
		}
		out = lead + strings.ReplaceAll(out, ",", ", ")
		if out == l.text {
			continue
		}
		edits = append(edits, protocol.TextEdit{
			Range:   doc.span(i, token.Span{End: len(l.text)}),
			NewText: out,
		})
	}
	return edits, nil
}
