package schema

import (
	"strings"
)

// Attr is the set of boolean term attributes, resolved once at load time.
type Attr uint32

const (
	TakesValue Attr = 1 << iota
	ExtensionAllowed
	RequireChild
	Unique
	TopLevelTagGroup
	Recommended
	Required
	TagGroup
	Reserved
)

var attrNames = []struct {
	a    Attr
	name string
}{
	{TakesValue, "takesValue"},
	{ExtensionAllowed, "extensionAllowed"},
	{RequireChild, "requireChild"},
	{Unique, "unique"},
	{TopLevelTagGroup, "topLevelTagGroup"},
	{Recommended, "recommended"},
	{Required, "required"},
	{TagGroup, "tagGroup"},
	{Reserved, "reserved"},
}

func (a Attr) Has(b Attr) bool {
	return a&b == b
}

func (a Attr) String() string {
	var parts []string
	for _, an := range attrNames {
		if a.Has(an.a) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, ",")
}

// Names of attributes that carry values rather than acting as flags.
const (
	AttrUnitClass      = "unitClass"
	AttrValueClass     = "valueClass"
	AttrSuggestedTag   = "suggestedTag"
	AttrRelatedTag     = "relatedTag"
	AttrRooted         = "rooted"
	AttrDeprecatedFrom = "deprecatedFrom"
	AttrInLibrary      = "inLibrary"
	AttrHedID          = "hedId"
)

var valuedAttrs = []string{
	AttrUnitClass,
	AttrValueClass,
	AttrSuggestedTag,
	AttrRelatedTag,
	AttrRooted,
	AttrDeprecatedFrom,
	AttrInLibrary,
	AttrHedID,
}

// aliases map the hyphenated spellings to schema attribute names.
var aliases = map[string]string{
	"takesvalue":        "takesValue",
	"extensionallowed":  "extensionAllowed",
	"requirechild":      "requireChild",
	"requireschild":     "requireChild",
	"unique":            "unique",
	"topleveltaggroup":  "topLevelTagGroup",
	"toplevelgrouponly": "topLevelTagGroup",
	"recommended":       "recommended",
	"required":          "required",
	"taggroup":          "tagGroup",
	"reserved":          "reserved",
	"unitclass":         AttrUnitClass,
	"valueclass":        AttrValueClass,
	"suggestedtag":      AttrSuggestedTag,
	"relatedtag":        AttrRelatedTag,
	"rooted":            AttrRooted,
	"deprecatedfrom":    AttrDeprecatedFrom,
	"inlibrary":         AttrInLibrary,
	"hedid":             AttrHedID,
}

// CanonicalAttrName maps spellings such as "takes-value" or "TakesValue"
// onto the schema attribute name. Unknown names are returned unchanged.
func CanonicalAttrName(name string) string {
	k := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	if c, ok := aliases[k]; ok {
		return c
	}
	return name
}

// ParseAttr returns the flag for a boolean attribute name.
func ParseAttr(name string) (Attr, bool) {
	c := CanonicalAttrName(name)
	for _, an := range attrNames {
		if an.name == c {
			return an.a, true
		}
	}
	return 0, false
}

func builtinAttrNames() []string {
	res := make([]string, 0, len(attrNames)+len(valuedAttrs))
	for _, an := range attrNames {
		res = append(res, an.name)
	}
	return append(res, valuedAttrs...)
}

func isValuedAttr(name string) bool {
	for _, v := range valuedAttrs {
		if v == name {
			return true
		}
	}
	return false
}

// AttributeDef is an entry of the schema attribute table.
type AttributeDef struct {
	Name        string
	Description string
	Properties  []string
}
