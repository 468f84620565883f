package main

import (
	"context"
	"fmt"
	"strings"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Version:     uint32(doc.version),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	c, err := s.getChecker()
	if err != nil || c == nil {
		msg := "no HED schema configured: set initialization option schemas or HED_SCHEMA"
		if err != nil {
			msg = fmt.Sprintf("could not load HED schemas: %v", err)
		}
		return append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  msg,
			Source:   "hed",
		})
	}
	for i, l := range checkLines(c, doc) {
		for _, is := range l {
			diagnostics = append(diagnostics, diagnostic(doc, i, is))
		}
	}
	return diagnostics
}

// checkLines validates every line of doc. Definitions declared on a line
// are known to the lines that declare none; a line declaring definitions
// is checked on its own.
func checkLines(c *hed.Checker, doc *document) map[int]issue.List {
	res := map[int]issue.List{}
	m := defs.NewMapper(c.Schemas)
	declares := make([]bool, len(doc.lines))
	owner := map[string]int{}
	for i, l := range doc.lines {
		g, err := parse.Parse(l.text)
		if err != nil {
			continue
		}
		before := m.Len()
		issues := m.Scan(g)
		for _, name := range m.Names()[before:] {
			owner[strings.ToLower(name)] = i
		}
		// duplicates within the line are reported by its own check
		for _, is := range issues {
			if is.Code == issue.CodeDuplicateDefinition && owner[strings.ToLower(is.Tag)] != i {
				res[i] = append(res[i], is)
			}
		}
		for _, sub := range g.Subgroups() {
			if defs.IsDefinition(sub) {
				declares[i] = true
				break
			}
		}
	}
	withDefs := *c
	withDefs.Defs = m
	for i, l := range doc.lines {
		lc := &withDefs
		if declares[i] {
			lc = c
		}
		res[i] = append(res[i], lc.Check(l.text).Issues...)
	}
	return res
}

func diagnostic(doc *document, i int, is issue.Issue) protocol.Diagnostic {
	sev := protocol.DiagnosticSeverityError
	if is.Severity == issue.Warning {
		sev = protocol.DiagnosticSeverityWarning
	}
	return protocol.Diagnostic{
		Range:    doc.span(i, is.Pos),
		Severity: sev,
		Code:     string(is.Code),
		Source:   "hed",
		Message:  is.Message,
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Full sync: the last change holds the whole document.
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
