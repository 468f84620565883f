package schema

// Raw is the pre-parsed structural representation of one schema, as
// produced by an external reader. Tags may appear in any order; each Path
// is the slash joined long form.
type Raw struct {
	Version      string `yaml:"version" json:"version"`
	Library      string `yaml:"library,omitempty" json:"library,omitempty"`
	WithStandard string `yaml:"withStandard,omitempty" json:"withStandard,omitempty"`
	// Merged marks a library already combined with its standard partner.
	// Terms then take their library from the inLibrary attribute instead
	// of Library.
	Merged bool `yaml:"merged,omitempty" json:"merged,omitempty"`

	Tags          []RawTag          `yaml:"tags" json:"tags"`
	UnitClasses   []RawUnitClass    `yaml:"unitClasses,omitempty" json:"unitClasses,omitempty"`
	UnitModifiers []RawUnitModifier `yaml:"unitModifiers,omitempty" json:"unitModifiers,omitempty"`
	ValueClasses  []RawValueClass   `yaml:"valueClasses,omitempty" json:"valueClasses,omitempty"`
	Attributes    []RawAttribute    `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// RawTag declares one term. Boolean attributes map to "" or "true";
// valued attributes such as unitClass carry comma separated values.
type RawTag struct {
	Path        string            `yaml:"path" json:"path"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

type RawUnitClass struct {
	Name         string    `yaml:"name" json:"name"`
	DefaultUnits string    `yaml:"defaultUnits,omitempty" json:"defaultUnits,omitempty"`
	Description  string    `yaml:"description,omitempty" json:"description,omitempty"`
	Units        []RawUnit `yaml:"units" json:"units"`
}

// RawUnit declares a unit. A nil ConversionFactor means 1.
type RawUnit struct {
	Name             string   `yaml:"name" json:"name"`
	ConversionFactor *float64 `yaml:"conversionFactor,omitempty" json:"conversionFactor,omitempty"`
	SIUnit           bool     `yaml:"SIUnit,omitempty" json:"SIUnit,omitempty"`
	UnitSymbol       bool     `yaml:"unitSymbol,omitempty" json:"unitSymbol,omitempty"`
	UnitPrefix       bool     `yaml:"unitPrefix,omitempty" json:"unitPrefix,omitempty"`
}

// RawUnitModifier declares an SI prefix. Symbol selects modifiers applied
// to unit symbols (k, m) rather than unit names (kilo, milli).
type RawUnitModifier struct {
	Name             string   `yaml:"name" json:"name"`
	ConversionFactor *float64 `yaml:"conversionFactor,omitempty" json:"conversionFactor,omitempty"`
	Symbol           bool     `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Description      string   `yaml:"description,omitempty" json:"description,omitempty"`
}

type RawValueClass struct {
	Name              string   `yaml:"name" json:"name"`
	AllowedCharacters []string `yaml:"allowedCharacters,omitempty" json:"allowedCharacters,omitempty"`
	Format            string   `yaml:"format,omitempty" json:"format,omitempty"`
	Description       string   `yaml:"description,omitempty" json:"description,omitempty"`
}

type RawAttribute struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  []string `yaml:"properties,omitempty" json:"properties,omitempty"`
}
