package issue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hedtools/go-hed/token"
)

func TestIssueError(t *testing.T) {
	tests := []struct {
		name string
		in   Issue
		want string
	}{
		{
			name: "message only",
			in:   New(CodeUnknownTag, token.Span{}, "", "no such term"),
			want: "error [TAG_INVALID] no such term",
		},
		{
			name: "with tag",
			in:   New(CodeUnknownTag, token.Span{}, "Foo", "no such term"),
			want: "error [TAG_INVALID] no such term (tag: Foo)",
		},
		{
			name: "warning with context",
			in: Issue{
				Code:     CodeCapitalization,
				Severity: Warning,
				Message:  "lowercase",
				File:     "events.tsv",
				Row:      3,
				Column:   2,
			},
			want: "events.tsv:3:2: warning [STYLE_WARNING] lowercase",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultSeverity(t *testing.T) {
	if DefaultSeverity(CodeCapitalization) != Warning {
		t.Errorf("capitalization should be a warning")
	}
	if DefaultSeverity(CodeDuplicateTag) != Error {
		t.Errorf("duplicate tag should be an error")
	}
	i := Newf(CodeDeprecated, token.Span{Start: 1, End: 2}, "Old", "%s is deprecated", "Old")
	if i.Severity != Warning || i.Message != "Old is deprecated" {
		t.Errorf("Newf = %+v", i)
	}
}

func TestList(t *testing.T) {
	l := List{
		New(CodeDuplicateTag, token.Span{}, "Red", "repeated"),
		New(CodeCapitalization, token.Span{}, "red", "lowercase"),
		New(CodeDuplicateTag, token.Span{}, "Blue", "repeated"),
	}
	if !l.HasErrors() {
		t.Errorf("HasErrors() = false")
	}
	if n := len(l.Errors()); n != 2 {
		t.Errorf("len(Errors()) = %d, want 2", n)
	}
	if n := len(l.Warnings()); n != 1 {
		t.Errorf("len(Warnings()) = %d, want 1", n)
	}
	if n := l.Count(CodeDuplicateTag); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
	if got, want := l.Error(), "error [TAG_EXPRESSION_REPEATED] repeated (tag: Red) (and 2 more)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	ctx := l.WithContext("f.tsv", 7, 0)
	if ctx[0].File != "f.tsv" || ctx[0].Row != 7 {
		t.Errorf("WithContext = %+v", ctx[0])
	}
	if l[0].File != "" {
		t.Errorf("WithContext mutated the receiver")
	}
	if (List{}).HasErrors() {
		t.Errorf("empty list has errors")
	}
	if got := (List{}).Codes(); got != nil {
		t.Errorf("empty Codes() = %#v, want nil", got)
	}
	if got := l.Codes(); len(got) != 3 || got[1] != CodeCapitalization {
		t.Errorf("Codes() = %v", got)
	}
}

func TestAsList(t *testing.T) {
	l := List{New(CodeParse, token.Span{}, "", "bad")}
	err := fmt.Errorf("wrapped: %w", l)
	got, ok := AsList(err)
	if !ok || len(got) != 1 {
		t.Fatalf("AsList = %v, %v", got, ok)
	}
	if _, ok := AsList(errors.New("plain")); ok {
		t.Errorf("AsList matched a plain error")
	}
}
