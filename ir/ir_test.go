package ir_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/parse"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/token"
)

func mustParse(t *testing.T, s string) *ir.Group {
	t.Helper()
	g, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return g
}

func TestOriginalRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"  ",
		"Red",
		"Red,Blue",
		"  Red ,  Blue  ",
		"Red, ( Blue ,(Green) ) ,Yellow",
		"(Definition/MyDef, (Event, Red)),\n Def/MyDef",
		"Duration/500 ms, sc:Electrode",
	} {
		g := mustParse(t, s)
		got, err := g.Form(ir.Original)
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("got %q, want %q", got, s)
		}
		if c := g.Clone(); c.String() != s {
			t.Errorf("clone renders %q, want %q", c.String(), s)
		}
	}
}

func TestOriginalAfterEdit(t *testing.T) {
	g := mustParse(t, "Red , (Blue, Green), Yellow")
	var blue *ir.Tag
	for tag := range g.Flatten() {
		if tag.Text == "Blue" {
			blue = tag
		}
	}
	if !g.RemoveTag(blue) {
		t.Fatal("Blue not removed")
	}
	g.Append(ir.NewTag("Purple"))
	got, _ := g.Form(ir.Original)
	if want := "Red , (Green), Yellow,Purple"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	n := g.RemoveGroups(func(*ir.Group) bool { return true })
	if n != 1 {
		t.Errorf("removed %d groups", n)
	}
	got, _ = g.Form(ir.Original)
	if want := "Red,Yellow,Purple"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplaceTag(t *testing.T) {
	g := mustParse(t, "Red, (Def/X, Blue)")
	var def *ir.Tag
	for tag := range g.Flatten() {
		if tag.Text == "Def/X" {
			def = tag
		}
	}
	repl := ir.NewGroup(&ir.Tag{Text: "Event", Synthetic: true}, &ir.Tag{Text: "Green", Synthetic: true})
	if !g.ReplaceTag(def, repl) {
		t.Fatal("not replaced")
	}
	if repl.Pos != def.Pos {
		t.Errorf("span not inherited: %s", repl.Pos)
	}
	if g.Parent(repl) == nil || g.Parent(repl) == g {
		t.Errorf("wrong parent")
	}
	if g.ReplaceTag(def, repl) {
		t.Errorf("replaced a node no longer in the tree")
	}
	got, _ := g.Form(ir.Original)
	if want := "Red, ((Event,Green), Blue)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortLongForms(t *testing.T) {
	g := mustParse(t, "Red, (Blue)")
	if _, err := g.Form(ir.Short); !errors.Is(err, ir.ErrUnresolved) {
		t.Errorf("got %v", err)
	}
	forms := map[string][2]string{
		"Red":  {"Property/Color/Red", "Red"},
		"Blue": {"Property/Color/Blue", "Color/Blue"},
	}
	for tag := range g.Flatten() {
		f := forms[tag.Text]
		tag.Entry = &schema.Node{Name: tag.Text}
		tag.SetForms(f[0], f[1])
	}
	if got, err := g.Form(ir.Long); err != nil || got != "Property/Color/Red,(Property/Color/Blue)" {
		t.Errorf("long: %q %v", got, err)
	}
	if got, err := g.Form(ir.Short); err != nil || got != "Red,(Color/Blue)" {
		t.Errorf("short: %q %v", got, err)
	}
}

func TestIterators(t *testing.T) {
	g := mustParse(t, "A, (B, (C, D)), E, (F)")
	var tags []string
	for tag := range g.Flatten() {
		tags = append(tags, tag.Text)
	}
	if !slices.Equal(tags, []string{"A", "B", "C", "D", "E", "F"}) {
		t.Errorf("flatten %v", tags)
	}
	tags = tags[:0]
	for tag := range g.Flatten() {
		tags = append(tags, tag.Text)
		if len(tags) == 2 {
			break
		}
	}
	if len(tags) != 2 {
		t.Errorf("break ignored")
	}
	n := 0
	for range g.Groups() {
		n++
	}
	if n != 4 {
		t.Errorf("got %d groups", n)
	}
	var walked []string
	g.Walk(func(n ir.Node, p *ir.Group) bool {
		if t, ok := n.(*ir.Tag); ok {
			walked = append(walked, t.Text)
		}
		g, ok := n.(*ir.Group)
		return !ok || len(g.Subgroups()) != 0 || len(g.Tags()) != 1
	})
	if !slices.Equal(walked, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("walk %v", walked)
	}
	if len(g.Tags()) != 2 || len(g.Subgroups()) != 2 {
		t.Errorf("direct children")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := mustParse(t, "A, (B, C)")
	c := g.Clone()
	c.Subgroups()[0].Children[0].(*ir.Tag).Text = "X"
	c.Append(&ir.Tag{Text: "Y", Pos: token.Span{}})
	if g.String() != "A, (B, C)" {
		t.Errorf("original changed: %s", g.String())
	}
	if c.String() != "A, (X, C),Y" {
		t.Errorf("clone: %s", c.String())
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []ir.Kind{ir.Original, ir.Short, ir.Long} {
		got, err := ir.ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("%s: %v %v", k, got, err)
		}
	}
	if _, err := ir.ParseKind("medium"); err == nil {
		t.Errorf("expected error")
	}
}
