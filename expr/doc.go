// Package expr parses and evaluates the calculator's arithmetic expressions.
//
// The grammar is fixed:
//
//	expression := term (('+'|'-') term)*
//	term       := factor (('*'|'/') factor)*
//	factor     := number | '(' expression ')' | '-' factor
//
// Numbers are decimal with an optional fractional part ("12", "1.5", ".5",
// "5."). Whitespace between tokens is ignored. There are no functions,
// variables, or implicit multiplication.
//
// Every failure is an *Error carrying a Kind; all kinds match
// ErrInvalidExpression with errors.Is.
package expr
