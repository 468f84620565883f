// Package issue defines the typed, non-fatal findings produced while
// resolving, expanding and validating HED annotation strings.
package issue

import (
	"fmt"
	"strings"

	"github.com/hedtools/go-hed/token"
)

// Code is a categorical issue identifier.
type Code string

const (
	// CodeParse marks a fatal syntax error in an annotation string.
	CodeParse Code = "PARSE_ERROR"
	// CodeUnknownTag indicates no schema term matches a tag.
	CodeUnknownTag Code = "TAG_INVALID"
	// CodeAmbiguousTag indicates a short form matches several schema terms.
	CodeAmbiguousTag Code = "TAG_AMBIGUOUS"
	// CodeInvalidValue indicates a placeholder value violates its value class.
	CodeInvalidValue Code = "VALUE_INVALID"
	// CodeInvalidUnit indicates a value carries a unit outside its unit classes.
	CodeInvalidUnit Code = "UNITS_INVALID"
	// CodeDuplicateTag indicates identical siblings within one group.
	CodeDuplicateTag Code = "TAG_EXPRESSION_REPEATED"
	// CodeUniqueViolation indicates a unique term appears more than once.
	CodeUniqueViolation Code = "TAG_NOT_UNIQUE"
	// CodeCapitalization flags a schema term not starting with an uppercase letter.
	CodeCapitalization Code = "STYLE_WARNING"
	// CodeMissingRequiredChild indicates a requires-child term used as a leaf.
	CodeMissingRequiredChild Code = "TAG_REQUIRES_CHILD"
	// CodeMissingRequiredTag indicates a required term is absent from a string.
	CodeMissingRequiredTag Code = "REQUIRED_TAG_MISSING"
	// CodeTopLevelGroup indicates a grouping rule on a term is violated.
	CodeTopLevelGroup Code = "TAG_GROUP_ERROR"
	// CodeDuplicateDefinition indicates a definition label is declared twice.
	CodeDuplicateDefinition Code = "DEFINITION_DUPLICATE"
	// CodeCircularDefinition indicates a definition body references a definition.
	CodeCircularDefinition Code = "DEFINITION_CIRCULAR"
	// CodeUnknownDefinition indicates a Def reference to an undeclared label.
	CodeUnknownDefinition Code = "DEF_INVALID"
	// CodeDefinitionValueMismatch indicates a Def value is missing or unexpected.
	CodeDefinitionValueMismatch Code = "DEF_VALUE_MISMATCH"
	// CodeDefinitionInvalid indicates a malformed definition group.
	CodeDefinitionInvalid Code = "DEFINITION_INVALID"
	// CodeInvalidExtension indicates an extension where none is allowed, or
	// one shadowing an existing term.
	CodeInvalidExtension Code = "TAG_EXTENSION_INVALID"
	// CodeInvalidCharacter indicates a character outside the allowed set.
	CodeInvalidCharacter Code = "CHARACTER_INVALID"
	// CodeEmptyTag indicates an empty path segment inside a tag.
	CodeEmptyTag Code = "TAG_EMPTY"
	// CodeInvalidPrefix indicates an undeclared namespace prefix.
	CodeInvalidPrefix Code = "TAG_NAMESPACE_PREFIX_INVALID"
	// CodeInvalidPlaceholder indicates a # outside a definition template.
	CodeInvalidPlaceholder Code = "PLACEHOLDER_INVALID"
	// CodeMissingRecommendedTag indicates a recommended term is absent.
	CodeMissingRecommendedTag Code = "RECOMMENDED_TAG_MISSING"
	// CodeDeprecated indicates use of a deprecated term.
	CodeDeprecated Code = "ELEMENT_DEPRECATED"
)

// Severity of an issue.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// DefaultSeverity returns the severity issues with code c carry unless
// overridden.
func DefaultSeverity(c Code) Severity {
	switch c {
	case CodeCapitalization, CodeMissingRecommendedTag, CodeDeprecated:
		return Warning
	}
	return Error
}

// Issue is a single finding. Pos is a byte span into the annotation string
// that was checked; File, Row and Column are left for callers to fill.
type Issue struct {
	Code     Code
	Severity Severity
	Message  string
	Pos      token.Span
	// Tag is the as-written text of the offending tag, if any.
	Tag string

	File   string
	Row    int
	Column int
}

// New builds an Issue with the default severity for code.
func New(code Code, pos token.Span, tag, msg string) Issue {
	return Issue{Code: code, Severity: DefaultSeverity(code), Message: msg, Pos: pos, Tag: tag}
}

// Newf formats a message and builds an Issue.
func Newf(code Code, pos token.Span, tag, format string, args ...any) Issue {
	return New(code, pos, tag, fmt.Sprintf(format, args...))
}

// Error formats the issue for display.
func (i *Issue) Error() string {
	if i == nil {
		return "issue <nil>"
	}
	var b strings.Builder
	if i.File != "" {
		b.WriteString(i.File)
		if i.Row > 0 {
			fmt.Fprintf(&b, ":%d", i.Row)
			if i.Column > 0 {
				fmt.Fprintf(&b, ":%d", i.Column)
			}
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s [%s] %s", i.Severity, i.Code, i.Message)
	if i.Tag != "" {
		fmt.Fprintf(&b, " (tag: %s)", i.Tag)
	}
	return b.String()
}
