package issue

import (
	"errors"
	"fmt"
	"slices"
)

// List is an ordered issue list. It implements error so callers that want
// a single error value can return it directly.
type List []Issue //nolint:errname // domain term.

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no issues"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// HasErrors reports whether any issue has Error severity.
func (l List) HasErrors() bool {
	return slices.ContainsFunc(l, func(i Issue) bool { return i.Severity == Error })
}

// Errors returns the issues with Error severity.
func (l List) Errors() List {
	return l.Filter(func(i Issue) bool { return i.Severity == Error })
}

// Warnings returns the issues with Warning severity.
func (l List) Warnings() List {
	return l.Filter(func(i Issue) bool { return i.Severity == Warning })
}

// Codes returns the code of every issue, in order, or nil for an empty
// list.
func (l List) Codes() []Code {
	if len(l) == 0 {
		return nil
	}
	res := make([]Code, len(l))
	for i := range l {
		res[i] = l[i].Code
	}
	return res
}

// Count returns how many issues carry code c.
func (l List) Count(c Code) int {
	n := 0
	for i := range l {
		if l[i].Code == c {
			n++
		}
	}
	return n
}

func (l List) Filter(keep func(Issue) bool) List {
	var res List
	for _, i := range l {
		if keep(i) {
			res = append(res, i)
		}
	}
	return res
}

// WithContext returns a copy of l with file, row and column attached to
// every issue. A zero column keeps the existing columns.
func (l List) WithContext(file string, row, column int) List {
	res := slices.Clone(l)
	for i := range res {
		res[i].File = file
		res[i].Row = row
		if column > 0 {
			res[i].Column = column
		}
	}
	return res
}

// AsList extracts an issue list from err.
func AsList(err error) (List, bool) {
	if err == nil {
		return nil, false
	}
	var list List
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}
