package defs

import (
	"testing"

	"github.com/hedtools/go-hed/ir"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/parse"
	"github.com/hedtools/go-hed/schema/schematest"
)

func mustParse(t *testing.T, s string) *ir.Group {
	t.Helper()
	g, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return g
}

func form(t *testing.T, g *ir.Group, k ir.Kind) string {
	t.Helper()
	s, err := g.Form(k)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestExpandScenario(t *testing.T) {
	sg := schematest.Group()
	g := mustParse(t, "(Definition/MyDef, (Event, Red)), Def/MyDef")
	m, issues := Scan(sg, g)
	if len(issues) != 0 {
		t.Fatal(issues)
	}
	if m.Len() != 1 || m.Get("mydef") == nil {
		t.Fatalf("names %v", m.Names())
	}
	out, issues := Expand(g, m, sg)
	if len(issues) != 0 {
		t.Fatal(issues)
	}
	if got, want := form(t, out, ir.Short), "(Definition/MyDef,(Event,Red)),(Event,Red)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := form(t, out, ir.Original), "(Definition/MyDef, (Event, Red)), (Event,Red)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := form(t, g, ir.Original); got != "(Definition/MyDef, (Event, Red)), Def/MyDef" {
		t.Errorf("input modified: %q", got)
	}
	body := out.Subgroups()[1]
	for tag := range body.Flatten() {
		if !tag.Synthetic {
			t.Errorf("%s not synthetic", tag.Text)
		}
	}
}

func TestDuplicateDefinition(t *testing.T) {
	sg := schematest.Group()
	g := mustParse(t, "(Definition/MyDef, (Event, Red)), Def/MyDef, (Definition/mydef, (Blue))")
	m, issues := Scan(sg, g)
	if len(issues) != 1 || issues[0].Code != issue.CodeDuplicateDefinition {
		t.Fatalf("got %v", issues)
	}
	out, _ := Expand(g, m, sg)
	got := form(t, out, ir.Short)
	if want := "(Definition/MyDef,(Event,Red)),(Event,Red),(Definition/mydef,(Blue))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScanAcrossSources(t *testing.T) {
	sg := schematest.Group()
	side := mustParse(t, "(Definition/Acc/#, (Duration/# s, Red)), (Definition/Go, (Agent-action))")
	g := mustParse(t, "Def/Acc/3, Def/Go")
	m, issues := Scan(sg, side)
	if len(issues) != 0 {
		t.Fatal(issues)
	}
	if got := m.Names(); len(got) != 2 || got[0] != "Acc" || got[1] != "Go" {
		t.Errorf("names %v", got)
	}
	if !m.Get("Acc").TakesValue || m.Get("Go").TakesValue {
		t.Errorf("value flags")
	}
	out, issues := Expand(g, m, sg)
	if len(issues) != 0 {
		t.Fatal(issues)
	}
	if got, want := form(t, out, ir.Short), "(Duration/3 s,Red),(Agent-action)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := form(t, out, ir.Long); got != "(Property/Temporal-property/Duration/3 s,Property/Sensory-property/Color/Red),(Event/Agent-action)" {
		t.Errorf("long %q", got)
	}
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		in   string
		code issue.Code
	}{
		{"(Definition/A, (Def/B))", issue.CodeCircularDefinition},
		{"(Definition/A, (Red, (Def-expand/B, (Blue))))", issue.CodeCircularDefinition},
		{"(Definition/A, Red, (Blue))", issue.CodeDefinitionInvalid},
		{"(Definition/A)", issue.CodeDefinitionInvalid},
		{"(Definition/A, (Blue), (Red))", issue.CodeDefinitionInvalid},
		{"(Definition/A/#, (Red))", issue.CodeDefinitionInvalid},
		{"(Definition/A, (Label/#))", issue.CodeDefinitionInvalid},
		{"(Definition/A/B, (Red))", issue.CodeDefinitionInvalid},
		{"(Definition/A, (Red, (Definition/B, (Blue))))", issue.CodeDefinitionInvalid},
	}
	sg := schematest.Group()
	for _, c := range cases {
		m, issues := Scan(sg, mustParse(t, c.in))
		if m.Len() != 0 {
			t.Errorf("%s: definition kept", c.in)
		}
		if len(issues) == 0 || issues[0].Code != c.code {
			t.Errorf("%s: got %v, want %s", c.in, issues, c.code)
		}
	}
}

func TestExpandErrors(t *testing.T) {
	sg := schematest.Group()
	m, _ := Scan(sg, mustParse(t, "(Definition/Acc/#, (Duration/# s)), (Definition/Go, (Red))"))
	cases := []struct {
		in   string
		code issue.Code
	}{
		{"Def/Nope", issue.CodeUnknownDefinition},
		{"Def/Acc", issue.CodeDefinitionValueMismatch},
		{"(Red, Def/Go/3)", issue.CodeDefinitionValueMismatch},
	}
	for _, c := range cases {
		g := mustParse(t, c.in)
		out, issues := Expand(g, m, sg)
		if len(issues) != 1 || issues[0].Code != c.code {
			t.Errorf("%s: got %v", c.in, issues)
		}
		if form(t, out, ir.Original) != c.in {
			t.Errorf("%s: reference not left in place", c.in)
		}
		if refs := m.CheckRefs(g); len(refs) != 1 || refs[0].Code != c.code {
			t.Errorf("%s: CheckRefs got %v", c.in, refs)
		}
	}
}

func TestExpandIdempotent(t *testing.T) {
	sg := schematest.Group()
	g := mustParse(t, "(Definition/Go, (Red)), Def/Go, (Blue, Def/Go), (Def-expand/Go, (Red))")
	m, _ := Scan(sg, g)
	for _, opts := range [][]ExpandOption{nil, {KeepLabel()}} {
		once, issues := Expand(g, m, sg, opts...)
		if len(issues) != 0 {
			t.Fatal(issues)
		}
		twice, issues := Expand(once, m, sg, opts...)
		if len(issues) != 0 {
			t.Fatal(issues)
		}
		a, b := form(t, once, ir.Long), form(t, twice, ir.Long)
		if a != b {
			t.Errorf("second expansion changed %q into %q", a, b)
		}
		for tag := range twice.Flatten() {
			if tag.Is(TermDef) {
				t.Errorf("Def left after expansion")
			}
		}
	}
}

func TestKeepLabel(t *testing.T) {
	sg := schematest.Group()
	g := mustParse(t, "Def/Acc/2")
	m, _ := Scan(sg, mustParse(t, "(Definition/Acc/#, (Delay/# ms, Blue))"))
	out, issues := Expand(g, m, sg, KeepLabel())
	if len(issues) != 0 {
		t.Fatal(issues)
	}
	if got, want := form(t, out, ir.Short), "(Def-expand/Acc/2,(Delay/2 ms,Blue))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if refs := m.CheckRefs(out); len(refs) != 0 {
		t.Errorf("expanded form fails its own check: %v", refs)
	}
}

func TestCheckDefExpand(t *testing.T) {
	sg := schematest.Group()
	m, _ := Scan(sg, mustParse(t, "(Definition/Go, (Red, Event))"))
	cases := []struct {
		in    string
		count int
	}{
		{"(Def-expand/Go, (Event, Red))", 0},
		{"(Def-expand/Go, (Red, Event))", 0},
		{"(Def-expand/Go, (Blue))", 1},
		{"(Def-expand/Go)", 1},
		{"(Def-expand/Gone, (Red))", 1},
	}
	for _, c := range cases {
		g := mustParse(t, c.in)
		if refs := m.CheckRefs(g); len(refs) != c.count {
			t.Errorf("%s: got %v", c.in, refs)
		}
	}
}
