package ir

import (
	"fmt"
	"strings"

	"github.com/hedtools/go-hed/token"
)

// Kind selects the rendering of Form.
type Kind int

const (
	Original Kind = iota
	Short
	Long
)

func (k Kind) String() string {
	switch k {
	case Original:
		return "original"
	case Short:
		return "short"
	case Long:
		return "long"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "original", "short" or "long" to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Original, Short, Long} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown form %q", s)
}

// Form renders t alone.
func (t *Tag) Form(k Kind) (string, error) {
	switch k {
	case Original:
		return t.Text, nil
	case Short, Long:
		if !t.Resolved() {
			return "", fmt.Errorf("%w: %s", ErrUnresolved, t.Text)
		}
		if k == Short {
			return t.short, nil
		}
		return t.long, nil
	}
	return "", fmt.Errorf("unknown form %v", k)
}

// Form renders g. Original output reuses the separators of g.Source
// between nodes that still carry their source spans and falls back to ","
// and bare parentheses elsewhere.
func (g *Group) Form(k Kind) (string, error) {
	var b strings.Builder
	src := ""
	if k == Original {
		src = g.Source
	}
	if err := g.write(&b, k, src); err != nil {
		return "", err
	}
	return b.String(), nil
}

// srcSpan returns the source span of n when it can be used to recover
// separators from src.
func srcSpan(n Node, src string) (token.Span, bool) {
	if src == "" {
		return token.Span{}, false
	}
	if t, ok := n.(*Tag); ok && t.Synthetic {
		return token.Span{}, false
	}
	s := n.Span()
	return s, !s.IsZero() && s.Valid(len(src))
}

// between returns src between a and b if, blanks aside, it is exactly want.
func between(src string, a, b Node, want string) (string, bool) {
	sa, ok := srcSpan(a, src)
	if !ok {
		return "", false
	}
	sb, ok := srcSpan(b, src)
	if !ok || sa.End > sb.Start {
		return "", false
	}
	x := src[sa.End:sb.Start]
	return x, strings.TrimSpace(x) == want
}

func (g *Group) write(b *strings.Builder, k Kind, src string) error {
	open, close := "", ""
	if g.Parens {
		open, close = "(", ")"
	}
	n := len(g.Children)
	gs, gok := srcSpan(g, src)
	if !g.Parens && src != "" {
		gs, gok = token.Span{Start: 0, End: len(src)}, true
	}
	if !g.Parens && n == 0 && gok && strings.TrimSpace(src) == "" {
		b.WriteString(src)
		return nil
	}
	lead, trail := open, close
	if gok && n > 0 {
		if cs, ok := srcSpan(g.Children[0], src); ok && gs.Start <= cs.Start {
			if x := src[gs.Start:cs.Start]; strings.TrimSpace(x) == open {
				lead = x
			}
		}
		if cs, ok := srcSpan(g.Children[n-1], src); ok && cs.End <= gs.End {
			if x := src[cs.End:gs.End]; strings.TrimSpace(x) == close {
				trail = x
			}
		}
	}
	b.WriteString(lead)
	for i, c := range g.Children {
		if i > 0 {
			sep, ok := between(src, g.Children[i-1], c, ",")
			if !ok {
				sep = ","
			}
			b.WriteString(sep)
		}
		switch x := c.(type) {
		case *Tag:
			s, err := x.Form(k)
			if err != nil {
				return err
			}
			b.WriteString(s)
		case *Group:
			if err := x.write(b, k, src); err != nil {
				return err
			}
		}
	}
	b.WriteString(trail)
	return nil
}
