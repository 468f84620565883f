package schema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hedtools/go-hed/schema"
	"github.com/hedtools/go-hed/schema/schematest"
)

func TestLoadStandard(t *testing.T) {
	s := schematest.Standard()
	if s.ID() != "8.3.0" {
		t.Errorf("id %q", s.ID())
	}
	red := s.FindExact("Red")
	if red == nil {
		t.Fatal("Red not found")
	}
	if red.Long != "Property/Sensory-property/Color/Red" {
		t.Errorf("long %q", red.Long)
	}
	if s.FindExact("property/sensory-property/color/red") != red {
		t.Errorf("long lookup is case sensitive")
	}
	if s.FindExact("Color/Red") != red {
		t.Errorf("partial path lookup failed")
	}
	if s.FindExact("Left-hand") != nil {
		t.Errorf("ambiguous name resolved")
	}
	if n := len(s.Lookup("left-hand")); n != 2 {
		t.Errorf("got %d Left-hand terms", n)
	}
	if !s.IsTerm("Onset") || s.IsTerm("#") {
		t.Errorf("IsTerm")
	}
}

func TestShortForms(t *testing.T) {
	s := schematest.Standard()
	cases := map[string]string{
		"Property/Sensory-property/Color/Red":          "Red",
		"Item/Body-part/Left-hand":                     "Body-part/Left-hand",
		"Item/Object/Glove/Left-hand":                  "Glove/Left-hand",
		"Property/Temporal-property/Duration/#":        "Duration/#",
		"Property/Organizational-property/Definition": "Definition",
		"Event":                                        "Event",
	}
	for long, short := range cases {
		n := s.FindExact(long)
		if n == nil {
			t.Errorf("%s not found", long)
			continue
		}
		if got := n.Short(); got != short {
			t.Errorf("%s: short %q, want %q", long, got, short)
		}
	}
	for n := range s.All() {
		if n.IsPlaceholder() {
			continue
		}
		if got := s.FindExact(n.Short()); got != n {
			t.Errorf("short form %q of %s does not resolve back", n.Short(), n.Long)
		}
	}
}

func TestNodeAttributes(t *testing.T) {
	s := schematest.Standard()
	cases := []struct {
		path     string
		ext      bool
		attr     schema.Attr
		wantAttr bool
	}{
		{"Red", true, schema.RequireChild, false},
		{"Color", true, schema.RequireChild, true},
		{"Event", false, schema.Unique, false},
		{"Agent-action", false, schema.Unique, true},
		{"Duration", false, schema.RequireChild, true},
		{"Duration/#", false, schema.TakesValue, true},
		{"Definition", false, schema.Reserved | schema.TopLevelTagGroup, true},
	}
	for _, c := range cases {
		n := s.FindExact(c.path)
		if n == nil {
			t.Errorf("%s not found", c.path)
			continue
		}
		if got := n.ExtensionAllowed(); got != c.ext {
			t.Errorf("%s: extension allowed %v", c.path, got)
		}
		if got := n.Has(c.attr); got != c.wantAttr {
			t.Errorf("%s: has %s = %v", c.path, c.attr, got)
		}
	}
	d := s.FindExact("Duration/#")
	if d.Term() != s.FindExact("Duration") {
		t.Errorf("placeholder term")
	}
	if len(d.UnitClasses) != 1 || d.UnitClasses[0].Name != "time" {
		t.Errorf("unit classes %v", d.UnitClasses)
	}
	if s.FindExact("Toy").DeprecatedFrom != "8.2.0" {
		t.Errorf("deprecatedFrom not kept")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(r *schema.Raw)
		want string
	}{
		{
			name: "missing parent",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "Nowhere/Thing"})
			},
			want: "parent is not declared",
		},
		{
			name: "duplicate path",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "event/sensory-event"})
			},
			want: "declared twice",
		},
		{
			name: "empty component",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "Event//X"})
			},
			want: "empty path component",
		},
		{
			name: "unknown attribute",
			edit: func(r *schema.Raw) {
				r.Tags[0].Attributes["colour"] = "red"
			},
			want: `unknown attribute "colour"`,
		},
		{
			name: "unknown unit class",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{
					Path:       "Event/#",
					Attributes: map[string]string{"unitClass": "weight"},
				})
			},
			want: `unknown unit class "weight"`,
		},
		{
			name: "bad factor",
			edit: func(r *schema.Raw) {
				z := 0.0
				r.UnitModifiers[0].ConversionFactor = &z
			},
			want: "not a positive finite number",
		},
		{
			name: "default unit",
			edit: func(r *schema.Raw) {
				r.UnitClasses[0].DefaultUnits = "fortnight"
			},
			want: "default unit",
		},
		{
			name: "conflicting value class",
			edit: func(r *schema.Raw) {
				r.ValueClasses = append(r.ValueClasses, schema.RawValueClass{Name: "nameClass"})
			},
			want: "value class nameClass declared twice",
		},
		{
			name: "takes value off placeholder",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{
					Path:       "Event/Thing",
					Attributes: map[string]string{"takesValue": ""},
				})
			},
			want: "placeholders take values",
		},
		{
			name: "placeholder with sibling",
			edit: func(r *schema.Raw) {
				r.Tags = append(r.Tags, schema.RawTag{Path: "Property/Temporal-property/Duration/Long"})
			},
			want: "placeholder must be the only child",
		},
		{
			name: "rooted in standard",
			edit: func(r *schema.Raw) {
				r.Tags[0].Attributes["rooted"] = "Item"
			},
			want: "rooted terms belong to library schemas",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := schematest.StandardRaw()
			c.edit(r)
			_, err := schema.Load(r)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, schema.ErrLoad) {
				t.Errorf("error %v does not wrap ErrLoad", err)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestLoadToleratesIdenticalRepeats(t *testing.T) {
	r := schematest.StandardRaw()
	r.UnitClasses = append(r.UnitClasses, r.UnitClasses[0])
	r.ValueClasses = append(r.ValueClasses, r.ValueClasses[1])
	r.UnitModifiers = append(r.UnitModifiers, r.UnitModifiers[0])
	s, err := schema.Load(r)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.UnitClasses()); n != 4 {
		t.Errorf("got %d unit classes", n)
	}
}

func TestRawRoundTrip(t *testing.T) {
	for _, s := range []*schema.Schema{schematest.Standard(), schematest.Library(), schematest.Merged()} {
		raw := s.Raw()
		s2, err := schema.Load(raw)
		if err != nil {
			t.Fatalf("%s: %v", s.ID(), err)
		}
		if diff := cmp.Diff(raw, s2.Raw()); diff != "" {
			t.Errorf("%s: raw differs (-first +second):\n%s", s.ID(), diff)
		}
		for n := range s.All() {
			n2 := s2.FindExact(n.Long)
			if n2 == nil {
				t.Errorf("%s: %s lost", s.ID(), n.Long)
				continue
			}
			if n2.Short() != n.Short() || n2.Attrs != n.Attrs || n2.Library != n.Library {
				t.Errorf("%s: %s changed", s.ID(), n.Long)
			}
		}
	}
}

func TestAttributeNames(t *testing.T) {
	r := schematest.StandardRaw()
	r.Attributes = []schema.RawAttribute{{Name: "annotation", Description: "free text"}}
	r.Tags[0].Attributes["annotation"] = "see docs"
	s, err := schema.Load(r)
	if err != nil {
		t.Fatal(err)
	}
	names := s.AttributeNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	found := false
	for _, n := range names {
		found = found || n == "annotation"
	}
	if !found {
		t.Errorf("declared attribute missing from %v", names)
	}
	if got := s.FindExact("Event").Properties["annotation"]; got != "see docs" {
		t.Errorf("property %q", got)
	}
}
