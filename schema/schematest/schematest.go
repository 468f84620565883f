// Package schematest provides small schemas for tests of packages built on
// schema.
package schematest

import (
	"github.com/hedtools/go-hed/schema"
)

func f(v float64) *float64 {
	return &v
}

func tag(path string, attrs ...string) schema.RawTag {
	t := schema.RawTag{Path: path}
	if len(attrs) == 0 {
		return t
	}
	t.Attributes = map[string]string{}
	for i := 0; i < len(attrs); i += 2 {
		v := ""
		if i+1 < len(attrs) {
			v = attrs[i+1]
		}
		t.Attributes[attrs[i]] = v
	}
	return t
}

// StandardRaw returns a fresh copy of a cut down standard vocabulary,
// version 8.3.0.
func StandardRaw() *schema.Raw {
	return &schema.Raw{
		Version: "8.3.0",
		Tags: []schema.RawTag{
			tag("Event", "suggestedTag", "Task-property"),
			tag("Event/Sensory-event"),
			tag("Event/Agent-action", "unique", ""),
			tag("Event/Agent-action/Reach", "unique", ""),
			tag("Agent", "extensionAllowed", ""),
			tag("Agent/Human"),
			tag("Item", "extensionAllowed", ""),
			tag("Item/Object"),
			tag("Item/Object/Ball"),
			tag("Item/Object/Toy", "deprecatedFrom", "8.2.0"),
			tag("Item/Object/Glove"),
			tag("Item/Object/Glove/Left-hand"),
			tag("Item/Body-part"),
			tag("Item/Body-part/Left-hand"),
			tag("Item/Body-part/Right-hand"),
			tag("Property", "extensionAllowed", ""),
			tag("Property/Sensory-property"),
			tag("Property/Sensory-property/Color", "requireChild", ""),
			tag("Property/Sensory-property/Color/Red"),
			tag("Property/Sensory-property/Color/Blue"),
			tag("Property/Sensory-property/Color/Green"),
			tag("Property/Temporal-property"),
			tag("Property/Temporal-property/Duration", "requireChild", ""),
			tag("Property/Temporal-property/Duration/#", "unitClass", "time", "valueClass", "numericClass"),
			tag("Property/Temporal-property/Delay", "requireChild", ""),
			tag("Property/Temporal-property/Delay/#", "unitClass", "time", "valueClass", "numericClass"),
			tag("Property/Temporal-property/Date-time", "requireChild", ""),
			tag("Property/Temporal-property/Date-time/#", "valueClass", "dateTimeClass"),
			tag("Property/Temporal-property/Temporal-marker"),
			tag("Property/Temporal-property/Temporal-marker/Onset"),
			tag("Property/Temporal-property/Temporal-marker/Offset"),
			tag("Property/Spatial-property"),
			tag("Property/Spatial-property/Distance", "requireChild", ""),
			tag("Property/Spatial-property/Distance/#", "unitClass", "physicalLength", "valueClass", "numericClass"),
			tag("Property/Spatial-property/Frequency", "requireChild", ""),
			tag("Property/Spatial-property/Frequency/#", "unitClass", "frequency", "valueClass", "numericClass"),
			tag("Property/Data-property"),
			tag("Property/Data-property/Cost", "requireChild", ""),
			tag("Property/Data-property/Cost/#", "unitClass", "currency", "valueClass", "numericClass"),
			tag("Property/Data-property/Count", "requireChild", ""),
			tag("Property/Data-property/Count/#", "valueClass", "numericClass"),
			tag("Property/Informational-property"),
			tag("Property/Informational-property/Label", "requireChild", ""),
			tag("Property/Informational-property/Label/#", "valueClass", "nameClass"),
			tag("Property/Informational-property/Description", "requireChild", ""),
			tag("Property/Informational-property/Description/#", "valueClass", "textClass"),
			tag("Property/Informational-property/Event-context", "topLevelTagGroup", "", "unique", ""),
			tag("Property/Task-property"),
			tag("Property/Task-property/Experimental-stimulus"),
			tag("Property/Organizational-property"),
			tag("Property/Organizational-property/Definition", "requireChild", "", "reserved", "", "topLevelTagGroup", ""),
			tag("Property/Organizational-property/Definition/#", "valueClass", "nameClass"),
			tag("Property/Organizational-property/Def", "requireChild", "", "reserved", ""),
			tag("Property/Organizational-property/Def/#", "valueClass", "nameClass"),
			tag("Property/Organizational-property/Def-expand", "requireChild", "", "reserved", "", "tagGroup", ""),
			tag("Property/Organizational-property/Def-expand/#", "valueClass", "nameClass"),
		},
		UnitClasses: []schema.RawUnitClass{
			{
				Name:         "time",
				DefaultUnits: "s",
				Units: []schema.RawUnit{
					{Name: "s", SIUnit: true, UnitSymbol: true},
					{Name: "second", SIUnit: true},
					{Name: "minute", ConversionFactor: f(60)},
					{Name: "hour", ConversionFactor: f(3600)},
				},
			},
			{
				Name:         "physicalLength",
				DefaultUnits: "m",
				Units: []schema.RawUnit{
					{Name: "m", SIUnit: true, UnitSymbol: true},
					{Name: "metre", SIUnit: true},
					{Name: "foot", ConversionFactor: f(0.3048)},
				},
			},
			{
				Name:         "frequency",
				DefaultUnits: "Hz",
				Units: []schema.RawUnit{
					{Name: "Hz", SIUnit: true, UnitSymbol: true},
					{Name: "hertz", SIUnit: true},
				},
			},
			{
				Name:         "currency",
				DefaultUnits: "$",
				Units: []schema.RawUnit{
					{Name: "$", UnitPrefix: true, UnitSymbol: true},
					{Name: "dollar"},
					{Name: "point"},
				},
			},
		},
		UnitModifiers: []schema.RawUnitModifier{
			{Name: "milli", ConversionFactor: f(1e-3)},
			{Name: "m", ConversionFactor: f(1e-3), Symbol: true},
			{Name: "kilo", ConversionFactor: f(1e3)},
			{Name: "k", ConversionFactor: f(1e3), Symbol: true},
			{Name: "micro", ConversionFactor: f(1e-6)},
			{Name: "u", ConversionFactor: f(1e-6), Symbol: true},
			{Name: "mega", ConversionFactor: f(1e6)},
			{Name: "M", ConversionFactor: f(1e6), Symbol: true},
		},
		ValueClasses: []schema.RawValueClass{
			{
				Name:              "numericClass",
				AllowedCharacters: []string{"digits", "E", "e", "plus", "hyphen", "period"},
				Format:            schema.FormatNumeric,
			},
			{
				Name:              "nameClass",
				AllowedCharacters: []string{"letters", "digits", "hyphen", "underscore"},
			},
			{
				Name:              "textClass",
				AllowedCharacters: []string{"text"},
			},
			{
				Name:              "dateTimeClass",
				AllowedCharacters: []string{"digits", "T", "hyphen", "colon", "period"},
				Format:            schema.FormatDateTime,
			},
		},
	}
}

// LibraryRaw returns a library vocabulary "score", version 2.0.0, partnered
// with StandardRaw. Its Item root is grafted onto the standard Item.
func LibraryRaw() *schema.Raw {
	return &schema.Raw{
		Version:      "2.0.0",
		Library:      "score",
		WithStandard: "8.3.0",
		Tags: []schema.RawTag{
			tag("Item", "rooted", "Item"),
			tag("Item/Electrode"),
			tag("Item/Electrode/Scalp-electrode"),
			tag("Brain-region"),
			tag("Brain-region/Frontal-lobe"),
			tag("Brain-region/Temporal-lobe"),
			tag("Finding", "requireChild", ""),
			tag("Finding/Spike", "recommended", ""),
			tag("Finding/Amplitude", "requireChild", ""),
			tag("Finding/Amplitude/#", "unitClass", "electricPotential", "valueClass", "numericClass"),
		},
		UnitClasses: []schema.RawUnitClass{
			{
				Name:         "electricPotential",
				DefaultUnits: "uV",
				Units: []schema.RawUnit{
					{Name: "V", SIUnit: true, UnitSymbol: true},
					{Name: "uV", ConversionFactor: f(1e-6), UnitSymbol: true},
					{Name: "volt", SIUnit: true},
				},
			},
		},
		ValueClasses: []schema.RawValueClass{
			{
				Name:              "numericClass",
				AllowedCharacters: []string{"digits", "E", "e", "plus", "hyphen", "period"},
				Format:            schema.FormatNumeric,
			},
		},
	}
}

func MustLoad(raw *schema.Raw) *schema.Schema {
	s, err := schema.Load(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func Standard() *schema.Schema {
	return MustLoad(StandardRaw())
}

func Library() *schema.Schema {
	return MustLoad(LibraryRaw())
}

// Merged returns Library merged into Standard.
func Merged() *schema.Schema {
	m, err := Standard().MergeLibrary(Library(), nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Group returns Standard as primary schema with Library under prefix "sc".
func Group() *schema.Group {
	g, err := schema.NewGroup(Standard(), map[string]*schema.Schema{"sc": Library()})
	if err != nil {
		panic(err)
	}
	return g
}
