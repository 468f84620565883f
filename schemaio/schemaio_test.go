package schemaio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/schema/schematest"
)

func TestReadFile(t *testing.T) {
	s, err := LoadFile("testdata/HED_8.3.0.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != "8.3.0" {
		t.Errorf("id %s", s.ID())
	}
	d := s.FindExact("Duration/#")
	if d == nil {
		t.Fatal("Duration/# missing")
	}
	tc := d.UnitClasses[0]
	if u := tc.Unit("minute"); u == nil || u.Factor != 60 {
		t.Errorf("minute: %+v", u)
	}
	if s.FindExact("Event").Description == "" {
		t.Errorf("description lost")
	}
}

func TestReadJSON(t *testing.T) {
	lib, err := LoadFile("testdata/HED_score_2.0.0.json")
	if err != nil {
		t.Fatal(err)
	}
	std, err := LoadFile("testdata/HED_8.3.0.yaml")
	if err != nil {
		t.Fatal(err)
	}
	m, err := std.MergeLibrary(lib, nil)
	if err != nil {
		t.Fatal(err)
	}
	if e := m.FindExact("Electrode"); e == nil || e.Library != "score" {
		t.Errorf("Electrode: %v", e)
	}
}

func TestReadUnknownField(t *testing.T) {
	_, err := Read(strings.NewReader("version: 8.3.0\ntagz: []\n"))
	if !errors.Is(err, schema.ErrLoad) {
		t.Errorf("got %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	raw := schematest.Standard().Raw()
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, raw); err != nil {
		t.Fatal(err)
	}
	got, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	raw, err := ReadFile("testdata/HED_8.3.0.yaml")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		patch string
	}{
		{
			name:  "json",
			patch: `[{"op": "add", "path": "/tags/-", "value": {"path": "Property/Color/Blue"}}]`,
		},
		{
			name:  "yaml",
			patch: "- op: add\n  path: /tags/-\n  value:\n    path: Property/Color/Blue\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Patch(raw, []byte(c.patch))
			if err != nil {
				t.Fatal(err)
			}
			s, err := schema.Load(p)
			if err != nil {
				t.Fatal(err)
			}
			if s.FindExact("Blue") == nil {
				t.Errorf("patch not applied")
			}
		})
	}
	if n := len(raw.Tags); n != 9 {
		t.Errorf("input modified: %d tags", n)
	}
	if _, err := Patch(raw, []byte(`[{"op": "remove", "path": "/tags/99"}]`)); err == nil {
		t.Errorf("expected error for bad path")
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "HED_score_2.0.0.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, _ := schema.ParseVersionSpec("sc:score_2.0.0")
	p, err := Locate(dir, spec)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(p) != "HED_score_2.0.0.json" {
		t.Errorf("found %s", p)
	}
	spec, _ = schema.ParseVersionSpec("8.3.0")
	if _, err := Locate(dir, spec); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
}
