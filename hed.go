// Package hed checks HED annotation strings. A Checker parses a string,
// expands its Def references and validates the result against a schema
// group; CheckBatch does so for many strings in parallel.
package hed

import (
	"errors"

	"github.com/hedtools/go-hed/debug"
	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/parse"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/token"
	"github.com/hedtools/go-hed/validate"
)

type Checker struct {
	Schemas *schema.Group
	// Defs holds definitions declared outside the checked strings, as in
	// sidecars. It is only read.
	Defs    *defs.Mapper
	Options []validate.Option
	// Expand validates strings with their Def references replaced by the
	// definition bodies.
	Expand bool
}

type CheckOpt func(*Checker)

func WithDefs(m *defs.Mapper) CheckOpt {
	return func(c *Checker) { c.Defs = m }
}

func WithValidateOptions(opts ...validate.Option) CheckOpt {
	return func(c *Checker) { c.Options = append(c.Options, opts...) }
}

func Expand(v bool) CheckOpt {
	return func(c *Checker) { c.Expand = v }
}

func NewChecker(sg *schema.Group, opts ...CheckOpt) *Checker {
	c := &Checker{Schemas: sg, Expand: true}
	for _, f := range opts {
		f(c)
	}
	return c
}

// Result is the outcome of checking one string. Tree is nil when the
// string does not parse.
type Result struct {
	Tree   *ir.Group
	Issues issue.List
}

// Check validates text. A Checker may be used from several goroutines.
func (c *Checker) Check(text string) Result {
	g, err := parse.Parse(text)
	if err != nil {
		return Result{Issues: parseIssues(err)}
	}
	tree := g
	if c.Expand {
		local := c.Defs.Clone(c.Schemas)
		// definition and reference problems are reported by the validator
		_ = local.Scan(g)
		tree, _ = defs.Expand(g, local, c.Schemas)
	}
	opts := append([]validate.Option{validate.WithDefinitions(c.Defs)}, c.Options...)
	issues := validate.New(c.Schemas, opts...).Validate(tree)
	if debug.Validate() {
		debug.Logf("check %q: %d issues\n", text, len(issues))
	}
	return Result{Tree: tree, Issues: issues}
}

// Convert rewrites text in the form k. Tags that do not resolve are
// reported and no output is produced.
func (c *Checker) Convert(text string, k ir.Kind) (string, issue.List) {
	g, err := parse.Parse(text)
	if err != nil {
		return "", parseIssues(err)
	}
	if issues := resolve.Tags(g, c.Schemas); len(issues) != 0 && k != ir.Original {
		return "", issues
	}
	out, err := g.Form(k)
	if err != nil {
		return "", issue.List{issue.New(issue.CodeUnknownTag, g.Pos, "", err.Error())}
	}
	return out, nil
}

// Definitions scans sources, such as the entries of a sidecar, for
// definitions and returns them as a mapper for WithDefs.
func Definitions(sg *schema.Group, sources ...string) (*defs.Mapper, issue.List) {
	m := defs.NewMapper(sg)
	var issues issue.List
	for _, src := range sources {
		g, err := parse.Parse(src)
		if err != nil {
			issues = append(issues, parseIssues(err)...)
			continue
		}
		issues = append(issues, m.Scan(g)...)
	}
	return m, issues
}

func parseIssues(err error) issue.List {
	var pe *parse.Error
	if errors.As(err, &pe) {
		return issue.List{pe.Issue()}
	}
	return issue.List{issue.New(issue.CodeParse, token.Span{}, "", err.Error())}
}
