package schema

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Value class formats.
const (
	FormatNone     = ""
	FormatNumeric  = "numeric"
	FormatDateTime = "datetime"
)

type ValueClass struct {
	Name        string
	Chars       CharSet
	Format      string
	Description string

	allowed []string
}

// CharSet is an allowed character set: explicit runes plus meta classes.
type CharSet struct {
	Letters  bool
	Digits   bool
	Blank    bool
	NonASCII bool
	// Text admits any printable character.
	Text  bool
	Runes string
}

var namedChars = map[string]rune{
	"hyphen":      '-',
	"period":      '.',
	"underscore":  '_',
	"slash":       '/',
	"colon":       ':',
	"plus":        '+',
	"dollar":      '$',
	"caret":       '^',
	"percent":     '%',
	"ampersand":   '&',
	"at":          '@',
	"exclamation": '!',
	"question":    '?',
	"equals":      '=',
	"apostrophe":  '\'',
	"asterisk":    '*',
	"hash":        '#',
	"semicolon":   ';',
	"less":        '<',
	"greater":     '>',
	"backslash":   '\\',
	"pipe":        '|',
}

// ParseCharSet builds a CharSet from allowedCharacter names: the meta
// classes letters, digits, blank, nonascii and text, named punctuation
// such as hyphen or period, or single literal characters.
func ParseCharSet(names []string) (CharSet, error) {
	var c CharSet
	var b strings.Builder
	for _, n := range names {
		switch strings.ToLower(n) {
		case "letters":
			c.Letters = true
		case "digits":
			c.Digits = true
		case "blank":
			c.Blank = true
		case "nonascii":
			c.NonASCII = true
		case "text":
			c.Text = true
		default:
			if r, ok := namedChars[strings.ToLower(n)]; ok {
				b.WriteRune(r)
				continue
			}
			if utf8.RuneCountInString(n) == 1 {
				b.WriteString(n)
				continue
			}
			return CharSet{}, fmt.Errorf("unknown allowed character %q", n)
		}
	}
	c.Runes = b.String()
	return c, nil
}

func (c CharSet) IsZero() bool {
	return c == CharSet{}
}

func (c CharSet) Allows(r rune) bool {
	switch {
	case c.Text && unicode.IsPrint(r):
		return true
	case c.Letters && r < utf8.RuneSelf && unicode.IsLetter(r):
		return true
	case c.Digits && r >= '0' && r <= '9':
		return true
	case c.Blank && r == ' ':
		return true
	case c.NonASCII && r >= utf8.RuneSelf && unicode.IsPrint(r):
		return true
	}
	return strings.ContainsRune(c.Runes, r)
}

// Invalid returns the first rune of s not allowed by c and its byte offset.
func (c CharSet) Invalid(s string) (rune, int, bool) {
	for i, r := range s {
		if !c.Allows(r) {
			return r, i, true
		}
	}
	return 0, 0, false
}

func buildValueClass(r RawValueClass) (*ValueClass, error) {
	cs, err := ParseCharSet(r.AllowedCharacters)
	if err != nil {
		return nil, fmt.Errorf("value class %s: %w", r.Name, err)
	}
	switch r.Format {
	case FormatNone, FormatNumeric, FormatDateTime:
	default:
		return nil, fmt.Errorf("value class %s: unknown format %q", r.Name, r.Format)
	}
	return &ValueClass{
		Name:        r.Name,
		Chars:       cs,
		Format:      r.Format,
		Description: r.Description,
		allowed:     r.AllowedCharacters,
	}, nil
}

func (v *ValueClass) raw() RawValueClass {
	return RawValueClass{
		Name:              v.Name,
		AllowedCharacters: v.allowed,
		Format:            v.Format,
		Description:       v.Description,
	}
}
