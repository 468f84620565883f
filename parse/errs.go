package parse

import (
	"errors"
	"fmt"

	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/token"
)

var ErrParse = errors.New("parse error")

// Error is a fatal syntax error. No tree is built when one occurs.
type Error struct {
	Msg  string
	Span token.Span
	// Err is the tokenizer error behind Msg, if any.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrParse, e.Span, e.Msg)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// Issue renders e as a PARSE_ERROR issue.
func (e *Error) Issue() issue.Issue {
	return issue.New(issue.CodeParse, e.Span, "", e.Msg)
}

func errorf(sp token.Span, format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Span: sp}
}
