package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/hedtools/go-hed/issue"
)

// issueEnv is what -where expressions see of an issue.
type issueEnv struct {
	Code     string `expr:"code"`
	Severity string `expr:"severity"`
	Message  string `expr:"message"`
	Tag      string `expr:"tag"`
	File     string `expr:"file"`
	Row      int    `expr:"row"`
	Column   int    `expr:"column"`
}

type filter struct {
	prg *vm.Program
}

func newFilter(src string) (*filter, error) {
	if src == "" {
		return nil, nil
	}
	prg, err := expr.Compile(src, expr.Env(issueEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("-where: %w", err)
	}
	return &filter{prg: prg}, nil
}

// keep reports whether i passes f. A nil filter keeps everything.
func (f *filter) keep(i issue.Issue) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.prg, issueEnv{
		Code:     string(i.Code),
		Severity: i.Severity.String(),
		Message:  i.Message,
		Tag:      i.Tag,
		File:     i.File,
		Row:      i.Row,
		Column:   i.Column,
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

func (f *filter) apply(l issue.List) (issue.List, error) {
	var res issue.List
	for _, i := range l {
		ok, err := f.keep(i)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, i)
		}
	}
	return res, nil
}
