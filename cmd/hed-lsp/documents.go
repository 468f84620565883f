package main

import (
	"sort"
	"strings"
	"sync"

	"github.com/hedtools/go-hed/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open .hed file: one annotation string per line.
type document struct {
	uri     string
	content string
	version int32
	pos     *token.PosDoc
	lines   []line
}

// line is a non blank line of a document and its byte offset.
type line struct {
	start int
	text  string
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		pos:     token.NewPosDoc(content),
	}
	start := 0
	for _, text := range strings.SplitAfter(content, "\n") {
		trimmed := strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(trimmed) != "" {
			doc.lines = append(doc.lines, line{start: start, text: trimmed})
		}
		start += len(text)
	}
	return doc
}

// lineAt returns the index of the line holding the zero based line number
// n, or -1.
func (doc *document) lineAt(n int) int {
	for i, l := range doc.lines {
		if ln, _ := doc.pos.LineCol(l.start); ln == n {
			return i
		}
	}
	return -1
}

// offset maps an LSP position to a byte offset within line i.
func (doc *document) offset(i int, p protocol.Position) int {
	off := doc.pos.Offset(int(p.Line), int(p.Character)) - doc.lines[i].start
	return min(max(off, 0), len(doc.lines[i].text))
}

// span converts a span within line i to an LSP range.
func (doc *document) span(i int, s token.Span) protocol.Range {
	l := doc.lines[i]
	if !s.Valid(len(l.text)) {
		s = token.Span{End: len(l.text)}
	}
	sl, sc := doc.pos.LineCol(l.start + s.Start)
	el, ec := doc.pos.LineCol(l.start + s.End)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (ds *documentStore) uris() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	res := make([]string, 0, len(ds.docs))
	for uri := range ds.docs {
		res = append(res, uri)
	}
	sort.Strings(res)
	return res
}
