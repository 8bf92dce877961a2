package expr

import (
	"regexp"
	"unicode/utf8"
)

// allowedRE is the character class an expression must stay within: digits,
// the four operators, parentheses, the decimal point, and whitespace as
// IsSpace defines it.
var allowedRE = regexp.MustCompile(`^[0-9+\-*/().\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+$`)

// Validate checks s against the allowed character class. It does not check
// syntax. The empty string is invalid.
func Validate(s string) error {
	if allowedRE.MatchString(s) {
		return nil
	}
	if s == "" {
		return newError(KindUnexpectedEnd, 0, "")
	}
	for i := 0; i < len(s); {
		if n := spaceAt(s, i); n > 0 {
			i += n
			continue
		}
		c := s[i]
		if isDigit(c) || c == '.' || c == '(' || c == ')' || IsOperator(s[i:i+1]) {
			i++
			continue
		}
		r, _ := utf8.DecodeRuneInString(s[i:])
		return newError(KindInvalidCharacter, i, string(r))
	}
	return newError(KindInvalidCharacter, 0, "")
}
