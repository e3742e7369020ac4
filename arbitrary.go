package windgen

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// normalizeArbitraryValue turns the inside of a bracketed arbitrary value
// into a concrete CSS value. Underscores stand in for spaces (class tokens
// cannot contain spaces); an escaped underscore stays literal.
//
// The value is validated only for syntactic well-formedness, not for
// existence in any scale: it lexes as CSS component values or the candidate
// is rejected.
func normalizeArbitraryValue(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	value := unescapeUnderscores(raw)
	if !lexesAsCSSValue(value) {
		return "", false
	}
	return value, true
}

func unescapeUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			b.WriteByte('_')
			i++
		case s[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// lexesAsCSSValue runs the CSS lexer over the value and checks it produces
// only clean tokens up to EOF, with balanced function parentheses.
func lexesAsCSSValue(value string) bool {
	lexer := css.NewLexer(parse.NewInputString(value))
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return lexer.Err() == io.EOF && depth == 0
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth < 0 {
				return false
			}
		case css.BadStringToken, css.BadURLToken,
			css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			return false
		}
	}
}
