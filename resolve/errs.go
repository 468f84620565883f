package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/token"
)

var ErrResolve = errors.New("cannot resolve tag")

// Error explains why a tag does not denote a schema term.
type Error struct {
	Code issue.Code
	Msg  string
	// Candidates lists the terms an ambiguous tag may denote.
	Candidates []*schema.Node
}

func errorf(code issue.Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrResolve, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrResolve
}

// Issue renders e for the tag written as tag at pos.
func (e *Error) Issue(pos token.Span, tag string) issue.Issue {
	msg := e.Msg
	if len(e.Candidates) != 0 {
		longs := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			longs[i] = c.Long
		}
		msg += ": could be " + strings.Join(longs, " or ")
	}
	return issue.New(e.Code, pos, tag, msg)
}

// Problem is a defect of a placeholder value.
type Problem struct {
	Code issue.Code
	Msg  string
}

func problem(code issue.Code, format string, args ...any) Problem {
	return Problem{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (p Problem) Issue(pos token.Span, tag string) issue.Issue {
	return issue.New(p.Code, pos, tag, p.Msg)
}
