package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hedtools/go-hed/schema/schematest"
	"go.lsp.dev/protocol"
)

const testURI = "file:///tmp/events.hed"

func testServer(t *testing.T, content string) *Server {
	t.Helper()
	s := newServer()
	s.setSchemas(schematest.Group(), nil)
	s.docs.put(testURI, content, 1)
	return s
}

func TestDiagnostics(t *testing.T) {
	s := testServer(t, "(Definition/MyDef, (Event, Red))\nDef/MyDef, Blue\n\nFoo, Red\n")
	diags := s.validateDocument(s.docs.get(testURI))
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	d := diags[0]
	if d.Code != "TAG_INVALID" || d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("got %+v", d)
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 0},
		End:   protocol.Position{Line: 3, Character: 3},
	}
	if diff := cmp.Diff(want, d.Range); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiagnosticsCrossLineDuplicate(t *testing.T) {
	s := testServer(t, "(Definition/A, (Red))\n(Definition/A, (Blue))\n")
	diags := s.validateDocument(s.docs.get(testURI))
	if len(diags) != 1 || diags[0].Code != "DEFINITION_DUPLICATE" || diags[0].Range.Start.Line != 1 {
		t.Errorf("got %v", diags)
	}
}

func TestDiagnosticsNoSchema(t *testing.T) {
	s := newServer()
	s.docs.put(testURI, "Red", 1)
	diags := s.validateDocument(s.docs.get(testURI))
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "no HED schema") {
		t.Errorf("got %v", diags)
	}
}

func TestHover(t *testing.T) {
	s := testServer(t, "(Definition/MyDef, (Event, Red))\nDef/MyDef, Blue\n\nFoo, Red\n")
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 3, Character: 6},
		},
	})
	if err != nil || h == nil {
		t.Fatalf("got %v, %v", h, err)
	}
	if !strings.Contains(h.Contents.Value, "`Property/Sensory-property/Color/Red`") {
		t.Errorf("got %q", h.Contents.Value)
	}
	h, _ = s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 2},
		},
	})
	if h == nil || !strings.Contains(h.Contents.Value, "(Event,Red)") {
		t.Errorf("got %v", h)
	}
}

func TestComplete(t *testing.T) {
	s := testServer(t, "(Definition/MyDef, (Event, Red))\n")
	c, _ := s.getChecker()
	doc := s.docs.get(testURI)
	tests := []struct {
		word string
		want []string
	}{
		{word: "Sensory-ev", want: []string{"Sensory-event"}},
		{word: "def/my", want: []string{"def/MyDef"}},
		{word: "sc:Sp", want: []string{"sc:Spike"}},
		{word: "zz:Sp"},
	}
	for _, tt := range tests {
		var got []string
		for _, it := range complete(c, doc, tt.word) {
			got = append(got, it.Label)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.word, diff)
		}
	}
}

func TestFormatting(t *testing.T) {
	s := testServer(t, "Event/Sensory-event,Property/Sensory-property/Color/Red\nFoo\n")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || edits[0].NewText != "Sensory-event, Red" || edits[0].Range.End.Character != 55 {
		t.Errorf("got %+v", edits)
	}
}

func TestSemanticTokens(t *testing.T) {
	s := testServer(t, "Def/MyDef, Blue")
	toks, err := s.SemanticTokensFull(context.Background(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{
		0, 0, 9, keywordType, 0,
		0, 9, 1, operatorType, 0,
		0, 2, 4, classType, 0,
	}
	if diff := cmp.Diff(want, toks.Data); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSettings(t *testing.T) {
	t.Setenv("HED_SCHEMA", "")
	t.Setenv("HED_SCHEMA_DIR", "")
	got := settings(map[string]any{"schemas": []any{"8.3.0", "sc:score_2.0.0"}, "schemaDir": "/s"})
	want := schemaSettings{Schemas: []string{"8.3.0", "sc:score_2.0.0"}, Dir: "/s"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	t.Setenv("HED_SCHEMA", "8.3.0,sc:score_2.0.0")
	if got := settings(nil); len(got.Schemas) != 2 {
		t.Errorf("got %+v", got)
	}
}
