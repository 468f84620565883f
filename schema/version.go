package schema

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// VersionSpec is a HED version identifier such as "8.3.0",
// "score_2.0.0" or "sc:score_2.0.0".
type VersionSpec struct {
	Prefix  string `parser:"( @Ident \":\" )?"`
	Library string `parser:"( @Ident \"_\" )?"`
	Version string `parser:"@Version"`
}

var versionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Version", Pattern: `[0-9]+\.[0-9]+\.[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
	{Name: "Punct", Pattern: `[:_]`},
})

var versionParser = participle.MustBuild[VersionSpec](
	participle.Lexer(versionLexer),
	participle.UseLookahead(3),
)

func ParseVersionSpec(s string) (VersionSpec, error) {
	v, err := versionParser.ParseString("", s)
	if err != nil {
		return VersionSpec{}, fmt.Errorf("invalid version spec %q: %w", s, err)
	}
	return *v, nil
}

// FileName returns the conventional base name HED[_library]_X.Y.Z.
func (v VersionSpec) FileName() string {
	if v.Library == "" {
		return "HED_" + v.Version
	}
	return "HED_" + v.Library + "_" + v.Version
}

func (v VersionSpec) String() string {
	s := v.Version
	if v.Library != "" {
		s = v.Library + "_" + s
	}
	if v.Prefix != "" {
		s = v.Prefix + ":" + s
	}
	return s
}
