package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	hed "github.com/hedtools/go-hed"
	"github.com/hedtools/go-hed/issue"
	"github.com/hedtools/go-hed/token"
)

func TestScanItems(t *testing.T) {
	items, err := scanItems(strings.NewReader("Red\n\n  \n(Blue, Event)\n"), "a.hed")
	if err != nil {
		t.Fatal(err)
	}
	want := []hed.Item{
		{Text: "Red", File: "a.hed", Row: 1},
		{Text: "(Blue, Event)", File: "a.hed", Row: 4},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	l := issue.List{
		issue.New(issue.CodeDuplicateTag, token.Span{}, "Red", "repeated"),
		issue.New(issue.CodeCapitalization, token.Span{}, "red", "lower case"),
	}
	f, err := newFilter(`severity == "warning" && tag startsWith "r"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.apply(l)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]issue.Code{issue.CodeCapitalization}, got.Codes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var nf *filter
	if got, _ := nf.apply(l); len(got) != 2 {
		t.Errorf("nil filter dropped issues")
	}
	if _, err := newFilter(`code + 1`); err == nil {
		t.Errorf("expected error for non boolean expression")
	}
}

func TestWithColumns(t *testing.T) {
	l := issue.List{issue.New(issue.CodeUnknownTag, token.Span{Start: 6, End: 9}, "Foo", "")}
	got := withColumns("Réd, Foo", l)
	if got[0].Column != 6 {
		t.Errorf("got column %d", got[0].Column)
	}
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	writeDiff(&buf, NoColors(), "a.hed:1", "Red, Blue", "Red,Blue")
	if got, want := buf.String(), "a.hed:1: Red,[- -]Blue\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf.Reset()
	writeDiff(&buf, NoColors(), "a.hed:1", "Red", "Red")
	if buf.Len() != 0 {
		t.Errorf("got %q for equal strings", buf.String())
	}
}

func TestColorsIssue(t *testing.T) {
	i := issue.New(issue.CodeUnknownTag, token.Span{}, "Foo", "no such term")
	i.File, i.Row, i.Column = "a.hed", 2, 5
	if got, want := NoColors().Issue(&i), i.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
