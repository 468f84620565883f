// Package parse builds the tree of a HED annotation string.
package parse

import (
	"errors"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/token"
)

// Parse builds the tree of text. Spans are byte offsets into text and the
// root records text as its Source. Syntax errors are returned as *Error.
func Parse(text string, opts ...ParseOption) (*ir.Group, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, text)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, &Error{Msg: te.Err.Error(), Span: te.Span, Err: te.Err}
		}
		return nil, err
	}
	root := &ir.Group{Pos: token.Span{Start: 0, End: len(text)}, Source: text}
	stack := []*ir.Group{root}
	// afterItem is set when the last token completed a tag or group.
	afterItem := false
	var last token.Token
	for _, tok := range toks {
		cur := stack[len(stack)-1]
		switch tok.Type {
		case token.TTag:
			if afterItem {
				return nil, errorf(tok.Span, "missing comma before %q", tok.Text)
			}
			cur.Append(&ir.Tag{Text: tok.Text, Pos: tok.Span})
			afterItem = true
		case token.TLParen:
			if afterItem {
				return nil, errorf(tok.Span, "missing comma before group")
			}
			if pOpts.maxDepth > 0 && len(stack) > pOpts.maxDepth {
				return nil, errorf(tok.Span, "groups nested deeper than %d", pOpts.maxDepth)
			}
			stack = append(stack, &ir.Group{Pos: tok.Span, Parens: true})
		case token.TComma:
			if !afterItem {
				return nil, errorf(tok.Span, "empty tag before comma")
			}
			afterItem = false
		case token.TRParen:
			if len(stack) == 1 {
				return nil, errorf(tok.Span, "unmatched closing parenthesis")
			}
			if len(cur.Children) == 0 {
				return nil, errorf(cur.Pos.Cover(tok.Span), "empty group")
			}
			if !afterItem {
				return nil, errorf(last.Span, "empty tag before closing parenthesis")
			}
			cur.Pos.End = tok.Span.End
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].Append(cur)
			afterItem = true
		}
		last = tok
	}
	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, errorf(token.Span{Start: open.Pos.Start, End: open.Pos.Start + 1}, "unmatched opening parenthesis")
	}
	if !afterItem && len(toks) != 0 {
		return nil, errorf(last.Span, "empty tag after comma")
	}
	return root, nil
}
