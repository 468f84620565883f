package resolve

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/schema"
)

var numberRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumber reports whether s is a decimal number, optionally signed and
// with an exponent.
func IsNumber(s string) bool {
	return numberRE.MatchString(s)
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func isDateTime(s string) bool {
	for _, l := range dateTimeLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}

// Quantity is a value with its unit. Unit is nil when the class has no
// default unit and the value carries none.
type Quantity struct {
	Value    float64
	Unit     *schema.Unit
	Modifier *schema.UnitModifier
}

// Base converts q into the base unit of its class.
func (q *Quantity) Base() float64 {
	v := q.Value
	if q.Modifier != nil {
		v *= q.Modifier.Factor
	}
	if q.Unit != nil {
		v *= q.Unit.Factor
	}
	return v
}

func (q *Quantity) String() string {
	s := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit == nil {
		return s
	}
	u := q.Unit.Name
	if q.Modifier != nil {
		u = q.Modifier.Name + u
	}
	if q.Unit.Prefix {
		return u + s
	}
	return s + " " + u
}

// CheckValue checks value as the value of placeholder n. Values of terms
// with unit classes are parsed as quantities; other values must satisfy
// one of the value classes of n.
func CheckValue(n *schema.Node, value string) (*Quantity, []Problem) {
	if strings.TrimSpace(value) == "" {
		return nil, []Problem{problem(issue.CodeInvalidValue, "empty value")}
	}
	if value == schema.PlaceholderName {
		return nil, []Problem{problem(issue.CodeInvalidPlaceholder, "placeholder %q used outside a definition", value)}
	}
	if len(n.UnitClasses) != 0 {
		q, p := parseQuantity(n, value)
		if p != nil {
			return nil, []Problem{*p}
		}
		return q, nil
	}
	if len(n.ValueClasses) == 0 {
		return nil, nil
	}
	var first *Problem
	for _, vc := range n.ValueClasses {
		p := checkClass(vc, value)
		if p == nil {
			return nil, nil
		}
		if first == nil {
			first = p
		}
	}
	return nil, []Problem{*first}
}

func checkClass(vc *schema.ValueClass, v string) *Problem {
	if !vc.Chars.IsZero() {
		if r, _, bad := vc.Chars.Invalid(v); bad {
			p := problem(issue.CodeInvalidValue, "character %q is not allowed in a %s value", r, vc.Name)
			return &p
		}
	}
	switch vc.Format {
	case schema.FormatNumeric:
		if !IsNumber(v) {
			p := problem(issue.CodeInvalidValue, "%q is not a number", v)
			return &p
		}
	case schema.FormatDateTime:
		if !isDateTime(v) {
			p := problem(issue.CodeInvalidValue, "%q is not an ISO 8601 date and time", v)
			return &p
		}
	}
	return nil
}

func parseQuantity(n *schema.Node, value string) (*Quantity, *Problem) {
	num, unitText := value, ""
	q := &Quantity{}
	if u, rest, ok := prefixUnit(n, value); ok {
		num = rest
		q.Unit = u
	} else if i := strings.LastIndexByte(value, ' '); i >= 0 {
		num, unitText = strings.TrimSpace(value[:i]), strings.TrimSpace(value[i+1:])
		u, m := FindUnit(n, unitText)
		if u == nil {
			p := problem(issue.CodeInvalidUnit, "%q is not a unit of %s", unitText, classNames(n))
			return nil, &p
		}
		q.Unit, q.Modifier = u, m
	} else {
		for _, c := range n.UnitClasses {
			if u := c.Default(); u != nil {
				q.Unit = u
				break
			}
		}
	}
	if !IsNumber(num) {
		p := problem(issue.CodeInvalidValue, "%q is not a number", num)
		return nil, &p
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		p := problem(issue.CodeInvalidValue, "%q: %v", num, err)
		return nil, &p
	}
	q.Value = f
	return q, nil
}

func classNames(n *schema.Node) string {
	names := make([]string, len(n.UnitClasses))
	for i, c := range n.UnitClasses {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// prefixUnit matches units written before the number, as in "$20".
func prefixUnit(n *schema.Node, value string) (*schema.Unit, string, bool) {
	for _, c := range n.UnitClasses {
		for _, u := range c.Units {
			if !u.Prefix || !strings.HasPrefix(value, u.Name) {
				continue
			}
			return u, strings.TrimSpace(value[len(u.Name):]), true
		}
	}
	return nil, "", false
}

// FindUnit finds the unit written as text for placeholder n, with the
// modifier it carries if any. Symbols and symbol modifiers are case
// sensitive; names and name modifiers are not.
func FindUnit(n *schema.Node, text string) (*schema.Unit, *schema.UnitModifier) {
	for _, c := range n.UnitClasses {
		if u := c.Unit(text); u != nil {
			return u, nil
		}
	}
	for _, c := range n.UnitClasses {
		for _, m := range c.Modifiers() {
			var rest string
			if m.Symbol {
				if !strings.HasPrefix(text, m.Name) {
					continue
				}
				rest = text[len(m.Name):]
			} else {
				if len(text) < len(m.Name) || !strings.EqualFold(text[:len(m.Name)], m.Name) {
					continue
				}
				rest = text[len(m.Name):]
			}
			if rest == "" {
				continue
			}
			if u := c.Unit(rest); u != nil && m.Applies(u) {
				return u, m
			}
		}
	}
	return nil, nil
}
