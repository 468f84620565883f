package main

import (
	"context"

	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/token"
	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenClass,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenOperator,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
	protocol.SemanticTokenModifierDeprecated,
}

const (
	keywordType = iota
	classType
	propertyType
	operatorType
)

const (
	definitionMod = 1 << iota
	deprecatedMod
)

type tokenInfo struct {
	line, character, length uint32
	typ, mods               uint32
}

// classify picks the semantic token of a tag: reserved definition terms
// are keywords, tags with values properties and other terms classes.
// Unknown tags get none.
func classify(c *hed.Checker, text string) (typ, mods uint32, ok bool) {
	t := &ir.Tag{Text: text}
	if err := resolve.Tag(t, c.Schemas); err != nil {
		return 0, 0, false
	}
	term := t.Term()
	if term.DeprecatedFrom != "" {
		mods |= deprecatedMod
	}
	switch {
	case t.Is(defs.TermDefinition):
		return keywordType, mods | definitionMod, true
	case t.Is(defs.TermDef) || t.Is(defs.TermDefExpand):
		return keywordType, mods, true
	case t.Value != "":
		return propertyType, mods, true
	}
	return classType, mods, true
}

func (s *Server) collectSemanticTokens(c *hed.Checker, doc *document, from, to int) []uint32 {
	var infos []tokenInfo
	var toks []token.Token
	for i, l := range doc.lines {
		ln, _ := doc.pos.LineCol(l.start)
		if ln < from || ln > to {
			continue
		}
		var err error
		toks, err = token.Tokenize(toks[:0], l.text)
		if err != nil {
			continue
		}
		for _, tok := range toks {
			ti := tokenInfo{length: uint32(tok.Span.Len()), typ: operatorType}
			if tok.Type == token.TTag {
				typ, mods, ok := classify(c, tok.Text)
				if !ok {
					continue
				}
				ti.typ, ti.mods = typ, mods
			}
			r := doc.span(i, tok.Span)
			ti.line, ti.character = r.Start.Line, r.Start.Character
			infos = append(infos, ti)
		}
	}
	return encodeTokens(infos)
}

// encodeTokens writes infos, sorted by position, in the relative
// five integer encoding of the protocol.
func encodeTokens(infos []tokenInfo) []uint32 {
	tokens := make([]uint32, 0, 5*len(infos))
	var prevLine, prevChar uint32
	for _, ti := range infos {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, ti.typ, ti.mods)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	c, _ := s.getChecker()
	if doc == nil || c == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(c, doc, 0, doc.pos.Lines()),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	c, _ := s.getChecker()
	if doc == nil || c == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(c, doc, int(params.Range.Start.Line), int(params.Range.End.Line)),
	}, nil
}
