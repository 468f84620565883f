package validate

import (
	"strings"
	"unicode"

	"github.com/hedtools/go-hed/defs"
	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/resolve"
	"github.com/hedtools/go-hed/schema"
)

func (r *run) tagPass() {
	for t := range r.root.Flatten() {
		if err, ok := r.errs[t]; ok {
			r.add(resolve.IssueOf(err, t))
			continue
		}
		if !t.Resolved() {
			continue
		}
		r.checkTag(t)
	}
}

func (r *run) checkTag(t *ir.Tag) {
	name := nameText(t)
	r.characters(t, name)
	r.capitalization(t, name)

	n := t.Entry
	switch {
	case n.IsPlaceholder():
		r.checkValue(t)
	case n.Has(schema.RequireChild) && t.Extension == "":
		r.add(issue.Newf(issue.CodeMissingRequiredChild, t.Pos, t.Text, "%s requires a child", n.Name))
	case n.Placeholder() != nil:
		r.add(issue.Newf(issue.CodeInvalidValue, t.Pos, t.Text, "%s requires a value", n.Name))
	}

	if term := t.Term(); term.DeprecatedFrom != "" {
		r.add(issue.Newf(issue.CodeDeprecated, t.Pos, t.Text,
			"%s is deprecated since schema %s", term.Name, term.DeprecatedFrom))
	}
}

// nameText returns the part of the tag naming schema terms and
// extensions, without prefix or value.
func nameText(t *ir.Tag) string {
	text := strings.TrimSpace(t.Text)
	if t.Prefix != "" {
		text = text[len(t.Prefix)+1:]
	}
	if t.Value != "" {
		text = strings.TrimSuffix(text, t.Value)
		text = strings.TrimSuffix(text, "/")
	}
	return text
}

func nameChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune("-_./", c)
}

func (r *run) characters(t *ir.Tag, name string) {
	for _, c := range name {
		if !nameChar(c) {
			r.add(issue.Newf(issue.CodeInvalidCharacter, t.Pos, t.Text, "character %q is not allowed in a tag name", c))
			return
		}
	}
}

// capitalization warns once per tag when a component naming a schema term
// starts with a lower case letter. Extensions and values are free.
func (r *run) capitalization(t *ir.Tag, name string) {
	comps := strings.Split(name, "/")
	if t.Extension != "" {
		comps = comps[:len(comps)-strings.Count(t.Extension, "/")-1]
	}
	for _, c := range comps {
		if c == "" {
			continue
		}
		if first := []rune(c)[0]; unicode.IsLower(first) {
			r.add(issue.Newf(issue.CodeCapitalization, t.Pos, t.Text, "%q should start with an upper case letter", c))
			return
		}
	}
}

func (r *run) placeholdersOK(t *ir.Tag) bool {
	return r.inDefs[t] || r.v.allowPlaceholders
}

func (r *run) checkValue(t *ir.Tag) {
	if t.Is(defs.TermDefinition) || t.Is(defs.TermDef) || t.Is(defs.TermDefExpand) {
		r.checkLabel(t)
		return
	}
	value := t.Value
	if strings.Contains(value, schema.PlaceholderName) {
		if !r.placeholdersOK(t) {
			r.add(issue.Newf(issue.CodeInvalidPlaceholder, t.Pos, t.Text, "placeholder %q used outside a definition", value))
			return
		}
		if value == schema.PlaceholderName {
			return
		}
		// A template value such as "# s" still has to carry a valid unit.
		value = strings.Replace(value, schema.PlaceholderName, "1", 1)
	}
	r.problems(t, value)
}

// checkLabel checks the value of a Definition, Def or Def-expand tag: a
// definition name, optionally followed by "/" and the definition value.
func (r *run) checkLabel(t *ir.Tag) {
	name, rest, _ := strings.Cut(t.Value, "/")
	r.problems(t, name)
	if t.Is(defs.TermDefinition) {
		return
	}
	if strings.Contains(rest, schema.PlaceholderName) && !r.placeholdersOK(t) {
		r.add(issue.Newf(issue.CodeInvalidPlaceholder, t.Pos, t.Text, "placeholder %q used outside a definition", rest))
	}
}

func (r *run) problems(t *ir.Tag, value string) {
	_, probs := resolve.CheckValue(t.Entry, value)
	for _, p := range probs {
		r.add(p.Issue(t.Pos, t.Text))
	}
}
