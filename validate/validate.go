// Package validate checks annotation strings against a schema.
//
// Validation runs three passes over a parsed string and never stops
// early: a string level pass (structure, duplicate siblings, unique
// terms), a tag level pass (resolution, characters, capitalization,
// values and units) and a group level pass (top level groups, required
// terms, definitions). Issues come out in pass order and, within a pass,
// left to right.
package validate

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
)

type Validator struct {
	sg                *schema.Group
	defs              *defs.Mapper
	allowPlaceholders bool
	checkRequired     bool
	checkRecommended  bool
}

type Option func(*Validator)

// WithDefinitions makes the definitions of m known to Def references, in
// addition to those declared in the validated string itself.
func WithDefinitions(m *defs.Mapper) Option {
	return func(v *Validator) { v.defs = m }
}

// AllowPlaceholders accepts "#" as a value outside definitions, as in
// sidecar templates.
func AllowPlaceholders() Option {
	return func(v *Validator) { v.allowPlaceholders = true }
}

// CheckRequired toggles the check for terms marked required. It is on by
// default.
func CheckRequired(on bool) Option {
	return func(v *Validator) { v.checkRequired = on }
}

// CheckRecommended toggles warnings for missing recommended terms. It is
// off by default.
func CheckRecommended(on bool) Option {
	return func(v *Validator) { v.checkRecommended = on }
}

func New(sg *schema.Group, opts ...Option) *Validator {
	v := &Validator{sg: sg, checkRequired: true}
	for _, f := range opts {
		f(v)
	}
	return v
}

// run holds the state of one validation.
type run struct {
	v      *Validator
	root   *ir.Group
	errs   map[*ir.Tag]error
	inDefs map[*ir.Tag]bool
	issues issue.List
}

func (r *run) add(is ...issue.Issue) {
	r.issues = append(r.issues, is...)
}

// Validate checks g, resolving its tags in place, and returns every issue
// found.
func (v *Validator) Validate(g *ir.Group) issue.List {
	r := &run{
		v:      v,
		root:   g,
		errs:   map[*ir.Tag]error{},
		inDefs: map[*ir.Tag]bool{},
	}
	for t := range g.Flatten() {
		if t.Resolved() {
			continue
		}
		if err := resolve.Tag(t, v.sg); err != nil {
			r.errs[t] = err
		}
	}
	for _, sub := range g.Subgroups() {
		if defs.IsDefinition(sub) {
			for t := range sub.Flatten() {
				r.inDefs[t] = true
			}
		}
	}
	r.stringPass()
	r.tagPass()
	r.groupPass()
	if debug.Validate() {
		debug.Logf("validate %s: %d issues\n", g, len(r.issues))
	}
	return r.issues
}

// ValidateString parses and validates text. On a syntax error the tree
// is nil and the only issue is the PARSE_ERROR.
func (v *Validator) ValidateString(text string) (*ir.Group, issue.List) {
	g, err := parse.Parse(text)
	if err != nil {
		var pe *parse.Error
		if errors.As(err, &pe) {
			return nil, issue.List{pe.Issue()}
		}
		return nil, issue.List{issue.New(issue.CodeParse, token.Span{}, "", err.Error())}
	}
	return g, v.Validate(g)
}
