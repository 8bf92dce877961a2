package expr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind identifies a lexical token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
	TokenSpace
	// TokenInvalid covers text outside the allowed character class and
	// malformed numbers such as "1.2.3". Only Scan emits it.
	TokenInvalid
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenSpace:
		return "space"
	case TokenInvalid:
		return "invalid"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IsOperator reports whether k is one of the four binary operators.
func (k TokenKind) IsOperator() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash:
		return true
	default:
		return false
	}
}

// Token is a lexical token with byte offsets [Start, End) into the source.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}

// IsOperator reports whether s is exactly one of "+", "-", "*", "/".
func IsOperator(s string) bool {
	switch s {
	case "+", "-", "*", "/":
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsSpace reports whether r is whitespace between tokens: the Unicode
// White_Space set plus U+FEFF, minus U+0085 (NEL).
func IsSpace(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	default:
		return unicode.IsSpace(r)
	}
}

// TrimSpace removes leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// spaceAt returns the byte size of the whitespace rune at s[i:], or 0.
func spaceAt(s string, i int) int {
	r, size := utf8.DecodeRuneInString(s[i:])
	if !IsSpace(r) {
		return 0
	}
	return size
}

// Scan splits s into tokens without failing. Runs of whitespace become one
// TokenSpace; disallowed characters and malformed numbers become
// TokenInvalid. The result never includes TokenEOF.
func Scan(s string) []Token {
	var out []Token
	i := 0
	for i < len(s) {
		start := i
		c := s[i]
		switch {
		case spaceAt(s, i) > 0:
			for i < len(s) {
				n := spaceAt(s, i)
				if n == 0 {
					break
				}
				i += n
			}
			out = append(out, Token{Kind: TokenSpace, Text: s[start:i], Start: start, End: i})
		case isDigit(c) || c == '.':
			dots, digits := 0, 0
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				if s[i] == '.' {
					dots++
				} else {
					digits++
				}
				i++
			}
			kind := TokenNumber
			if dots > 1 || digits == 0 {
				kind = TokenInvalid
			}
			out = append(out, Token{Kind: kind, Text: s[start:i], Start: start, End: i})
		default:
			kind := TokenInvalid
			switch c {
			case '+':
				kind = TokenPlus
			case '-':
				kind = TokenMinus
			case '*':
				kind = TokenStar
			case '/':
				kind = TokenSlash
			case '(':
				kind = TokenLParen
			case ')':
				kind = TokenRParen
			}
			if kind == TokenInvalid {
				_, size := utf8.DecodeRuneInString(s[i:])
				i += size
			} else {
				i++
			}
			out = append(out, Token{Kind: kind, Text: s[start:i], Start: start, End: i})
		}
	}
	return out
}

// Tokenize returns the significant tokens of s followed by TokenEOF.
// A disallowed character yields KindInvalidCharacter and a malformed number
// yields KindUnexpectedToken.
func Tokenize(s string) ([]Token, error) {
	scanned := Scan(s)
	out := make([]Token, 0, len(scanned)+1)
	for _, tok := range scanned {
		switch tok.Kind {
		case TokenSpace:
			continue
		case TokenInvalid:
			if isDigit(tok.Text[0]) || tok.Text[0] == '.' {
				return nil, newError(KindUnexpectedToken, tok.Start, tok.Text)
			}
			return nil, newError(KindInvalidCharacter, tok.Start, tok.Text)
		}
		out = append(out, tok)
	}
	out = append(out, Token{Kind: TokenEOF, Start: len(s), End: len(s)})
	return out, nil
}
