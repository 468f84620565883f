// Package resolve maps tag text onto schema terms and checks placeholder
// values against value and unit classes.
package resolve

import (
	"errors"
	"strings"

	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/schema"
)

// Result is a resolved tag. Node is the placeholder node when the tag
// carries a value.
type Result struct {
	Node      *schema.Node
	Prefix    string
	Value     string
	Extension string
}

// Long returns the long form of the tag.
func (r *Result) Long() string {
	return r.form(func(n *schema.Node) string { return n.Long })
}

// Short returns the short form of the tag.
func (r *Result) Short() string {
	return r.form((*schema.Node).Short)
}

func (r *Result) form(f func(*schema.Node) string) string {
	var s string
	switch {
	case r.Node.IsPlaceholder():
		s = f(r.Node.Parent) + "/" + r.Value
	case r.Extension != "":
		s = f(r.Node) + "/" + r.Extension
	default:
		s = f(r.Node)
	}
	if r.Prefix != "" {
		s = r.Prefix + ":" + s
	}
	return s
}

// SplitPrefix splits a leading "prefix:" off text. Only a colon before the
// first slash starts a prefix.
func SplitPrefix(text string) (prefix, rest string) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", text
	}
	if j := strings.IndexByte(text, '/'); j >= 0 && j < i {
		return "", text
	}
	return text[:i], text[i+1:]
}

// Resolve finds the term text denotes in the schema bound to prefix.
//
// The slash separated components are matched left to right, extending the
// matched prefix as long as some term matches it, either as a full long
// path or as a term whose ancestor chain ends with the components. What
// remains becomes the value of a placeholder child or the extension of a
// term allowing one.
func Resolve(text string, sg *schema.Group, prefix string) (*Result, error) {
	s := sg.Schema(prefix)
	if s == nil {
		return nil, errorf(issue.CodeInvalidPrefix, "no schema is bound to prefix %q", prefix)
	}
	comps := strings.Split(text, "/")
	for _, c := range comps {
		if strings.TrimSpace(c) == "" {
			return nil, errorf(issue.CodeEmptyTag, "%q has an empty path component", text)
		}
	}
	var cands []*schema.Node
	k := 0
	for k < len(comps) && comps[k] != schema.PlaceholderName {
		m := s.Match(comps[:k+1])
		if len(m) == 0 {
			break
		}
		cands = m
		k++
	}
	if debug.Resolve() {
		debug.Logf("resolve %q in %s: matched %d components, %d candidates\n", text, s.ID(), k, len(cands))
	}
	if k == 0 {
		return nil, errorf(issue.CodeUnknownTag, "%q is not a schema term", comps[0])
	}
	if len(cands) > 1 && s.Library != "" {
		var own []*schema.Node
		for _, c := range cands {
			if c.Library == s.Library {
				own = append(own, c)
			}
		}
		if len(own) != 0 {
			cands = own
		}
	}
	if len(cands) > 1 {
		e := errorf(issue.CodeAmbiguousTag, "%q is ambiguous", strings.Join(comps[:k], "/"))
		e.Candidates = cands
		return nil, e
	}
	r := &Result{Node: cands[0], Prefix: prefix}
	rest := comps[k:]
	if len(rest) == 0 {
		return r, nil
	}
	if ph := r.Node.Placeholder(); ph != nil {
		r.Node = ph
		r.Value = strings.Join(rest, "/")
		return r, nil
	}
	if !r.Node.ExtensionAllowed() {
		return nil, errorf(issue.CodeInvalidExtension, "%s does not allow extension %q", r.Node.Short(), strings.Join(rest, "/"))
	}
	for _, c := range rest {
		if s.IsTerm(c) {
			return nil, errorf(issue.CodeInvalidExtension, "extension %q of %s is already a schema term", c, r.Node.Short())
		}
	}
	r.Extension = strings.Join(rest, "/")
	return r, nil
}

// Tag resolves t in place, splitting off a namespace prefix.
func Tag(t *ir.Tag, sg *schema.Group) error {
	prefix, text := SplitPrefix(t.Text)
	r, err := Resolve(text, sg, prefix)
	if err != nil {
		return err
	}
	t.Prefix = r.Prefix
	t.Entry = r.Node
	t.Value = r.Value
	t.Extension = r.Extension
	t.SetForms(r.Long(), r.Short())
	return nil
}

// Tags resolves every tag of g that is not resolved yet and returns one
// issue per tag that fails.
func Tags(g *ir.Group, sg *schema.Group) issue.List {
	var res issue.List
	for t := range g.Flatten() {
		if t.Resolved() {
			continue
		}
		if err := Tag(t, sg); err != nil {
			res = append(res, IssueOf(err, t))
		}
	}
	return res
}

// IssueOf renders an error of Tag as an issue for t.
func IssueOf(err error, t *ir.Tag) issue.Issue {
	var e *Error
	if errors.As(err, &e) {
		return e.Issue(t.Pos, t.Text)
	}
	return issue.New(issue.CodeUnknownTag, t.Pos, t.Text, err.Error())
}
