// Package token splits HED annotation strings into tags, commas and
// parentheses, recording the byte span of every token.
package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TTag TokenType = iota
	TComma
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TTag:    "TTag",
		TComma:  "TComma",
		TLParen: "TLParen",
		TRParen: "TRParen",
	}[t]
}

type Token struct {
	Type TokenType
	Span Span
	// Text is the token text with surrounding blanks removed.
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Span)
}

func (t *Token) String() string {
	return t.Text
}

var (
	ErrInvalidChar = errors.New("invalid character")
	ErrReserved    = errors.New("reserved delimiter")
)

type TokenizeErr struct {
	Err  error
	Span Span
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, s Span) *TokenizeErr {
	return &TokenizeErr{Err: e, Span: s}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Span)
}
