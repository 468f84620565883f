package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Reserved lists delimiters that may not appear anywhere in an annotation
// string handed to the core. Curly braces belong to sidecar column
// templates and are substituted before validation.
const Reserved = `[]{}~"`

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isReserved(r rune) bool {
	for _, x := range Reserved {
		if r == x {
			return true
		}
	}
	return false
}

// Tokenize appends the tokens of src to dst. Tag tokens are trimmed of
// surrounding blanks and their spans cover only the trimmed text.
func Tokenize(dst []Token, src string) ([]Token, error) {
	tagStart, tagEnd := -1, -1
	flush := func() {
		if tagStart == -1 {
			return
		}
		sp := Span{Start: tagStart, End: tagEnd}
		dst = append(dst, Token{Type: TTag, Span: sp, Text: src[tagStart:tagEnd]})
		tagStart, tagEnd = -1, -1
	}
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		sp := Span{Start: i, End: i + sz}
		switch {
		case r == utf8.RuneError && sz == 1:
			return nil, NewTokenizeErr(fmt.Errorf("%w: malformed utf-8", ErrInvalidChar), sp)
		case isBlank(r):
		case unicode.IsControl(r):
			return nil, NewTokenizeErr(fmt.Errorf("%w %U", ErrInvalidChar, r), sp)
		case isReserved(r):
			return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrReserved, r), sp)
		case r == ',':
			flush()
			dst = append(dst, Token{Type: TComma, Span: sp, Text: ","})
		case r == '(':
			flush()
			dst = append(dst, Token{Type: TLParen, Span: sp, Text: "("})
		case r == ')':
			flush()
			dst = append(dst, Token{Type: TRParen, Span: sp, Text: ")"})
		default:
			if tagStart == -1 {
				tagStart = i
			}
			tagEnd = i + sz
		}
		i += sz
	}
	flush()
	return dst, nil
}
