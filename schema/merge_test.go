package schema_test

import (
	"errors"
	"testing"

	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/schema/schematest"
)

func TestMergeLibrary(t *testing.T) {
	std := schematest.Standard()
	lib := schematest.Library()
	m, err := std.MergeLibrary(lib, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.ID() != "score_2.0.0" || m.WithStandard != "8.3.0" || !m.Merged {
		t.Errorf("merged header %s with %s", m.ID(), m.WithStandard)
	}
	e := m.FindExact("Electrode")
	if e == nil {
		t.Fatal("Electrode not merged")
	}
	if e.Long != "Item/Electrode" || e.Library != "score" {
		t.Errorf("Electrode: %s from %q", e.Long, e.Library)
	}
	if e.Parent != m.FindExact("Item") {
		t.Errorf("Electrode not grafted under the standard Item")
	}
	if n := len(m.Lookup("Item")); n != 1 {
		t.Errorf("got %d Item terms", n)
	}
	if r := m.FindExact("Red"); r == nil || r.Library != "" {
		t.Errorf("standard term lost its origin")
	}
	if m.FindExact("Frontal-lobe") == nil || m.UnitClass("electricPotential") == nil {
		t.Errorf("library content missing")
	}
	if std.FindExact("Electrode") != nil || len(std.FindExact("Item").Children) != 2 {
		t.Errorf("standard schema was modified")
	}
}

func TestMergeLibraryAttach(t *testing.T) {
	raw := schematest.LibraryRaw()
	delete(raw.Tags[0].Attributes, "rooted")
	raw.Tags[0].Path = "Things"
	for i := 1; i < 3; i++ {
		raw.Tags[i].Path = "Things" + raw.Tags[i].Path[len("Item"):]
	}
	lib := schematest.MustLoad(raw)
	m, err := schematest.Standard().MergeLibrary(lib, map[string]string{"Things": "Item/Object"})
	if err != nil {
		t.Fatal(err)
	}
	if e := m.FindExact("Electrode"); e == nil || e.Long != "Item/Object/Electrode" {
		t.Errorf("attach ignored: %v", e)
	}
	if m.FindExact("Things") != nil {
		t.Errorf("attached root kept")
	}
}

func TestMergeLibraryConflicts(t *testing.T) {
	cases := []struct {
		name string
		edit func(r *schema.Raw)
	}{
		{
			name: "root collision",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "Event"})
			},
		},
		{
			name: "child collision",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "Item/Object"})
			},
		},
		{
			name: "missing rooted target",
			edit: func(r *schema.Raw) {
				r.Tags[0].Attributes["rooted"] = "Gadget"
			},
		},
		{
			name: "value class",
			edit: func(r *schema.Raw) {
				r.ValueClasses[0].AllowedCharacters = []string{"digits"}
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := schematest.LibraryRaw()
			c.edit(raw)
			lib := schematest.MustLoad(raw)
			_, err := schematest.Standard().MergeLibrary(lib, nil)
			if !errors.Is(err, schema.ErrConflict) {
				t.Errorf("got %v, want ErrConflict", err)
			}
		})
	}
}

func TestMergeStandardIntoStandard(t *testing.T) {
	std := schematest.Standard()
	if _, err := std.MergeLibrary(schematest.Standard(), nil); !errors.Is(err, schema.ErrConflict) {
		t.Errorf("got %v", err)
	}
}

func TestNewGroup(t *testing.T) {
	std := schematest.Standard()
	lib := schematest.Library()
	g, err := schema.NewGroup(std, map[string]*schema.Schema{"sc": lib, "la": lib})
	if err != nil {
		t.Fatal(err)
	}
	if g.Schema("") != std || g.Primary() != std || g.Schema("sc") != lib || g.Schema("zz") != nil {
		t.Errorf("prefix lookup")
	}
	if got := g.Prefixes(); len(got) != 2 || got[0] != "la" || got[1] != "sc" {
		t.Errorf("prefixes %v", got)
	}
	if n := len(g.All()); n != 2 {
		t.Errorf("All returned %d schemas", n)
	}
	for _, p := range []string{"", "s1", "a:b", "é"} {
		if _, err := schema.NewGroup(std, map[string]*schema.Schema{p: lib}); !errors.Is(err, schema.ErrPrefix) {
			t.Errorf("prefix %q: got %v", p, err)
		}
	}
	if s := schema.Single(std); s.Primary() != std || len(s.Prefixes()) != 0 {
		t.Errorf("Single")
	}
}

func TestParseVersionSpec(t *testing.T) {
	cases := []struct {
		in   string
		want schema.VersionSpec
		file string
	}{
		{"8.3.0", schema.VersionSpec{Version: "8.3.0"}, "HED_8.3.0"},
		{"score_2.0.0", schema.VersionSpec{Library: "score", Version: "2.0.0"}, "HED_score_2.0.0"},
		{"sc:score_2.0.0", schema.VersionSpec{Prefix: "sc", Library: "score", Version: "2.0.0"}, "HED_score_2.0.0"},
		{"ts:8.2.0", schema.VersionSpec{Prefix: "ts", Version: "8.2.0"}, "HED_8.2.0"},
	}
	for _, c := range cases {
		got, err := schema.ParseVersionSpec(c.in)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %+v", c.in, got)
		}
		if got.FileName() != c.file {
			t.Errorf("%s: file %s", c.in, got.FileName())
		}
		if got.String() != c.in {
			t.Errorf("%s: string %s", c.in, got.String())
		}
	}
	for _, bad := range []string{"", "8.3", "score", "sc:", "score_", "8.3.0.1", "a:b:8.3.0"} {
		if _, err := schema.ParseVersionSpec(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
