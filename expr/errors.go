package expr

import (
	"errors"
	"fmt"
)

// Kind classifies why an expression could not be evaluated.
type Kind uint8

const (
	KindInvalidCharacter Kind = iota + 1
	KindUnexpectedToken
	KindUnexpectedEnd
	KindUnbalancedParens
	KindDivisionByZero
	KindNonFinite
	KindTooDeep
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid character"
	case KindUnexpectedToken:
		return "unexpected token"
	case KindUnexpectedEnd:
		return "unexpected end of expression"
	case KindUnbalancedParens:
		return "unbalanced parentheses"
	case KindDivisionByZero:
		return "division by zero"
	case KindNonFinite:
		return "result is not finite"
	case KindTooDeep:
		return "expression nested too deeply"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var (
	// ErrInvalidExpression matches every error returned by this package.
	ErrInvalidExpression = errors.New("invalid expression")

	ErrInvalidCharacter = errors.New(KindInvalidCharacter.String())
	ErrUnexpectedToken  = errors.New(KindUnexpectedToken.String())
	ErrUnexpectedEnd    = errors.New(KindUnexpectedEnd.String())
	ErrUnbalancedParens = errors.New(KindUnbalancedParens.String())
	ErrDivisionByZero   = errors.New(KindDivisionByZero.String())
	ErrNonFinite        = errors.New(KindNonFinite.String())
	ErrTooDeep          = errors.New(KindTooDeep.String())
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCharacter:
		return ErrInvalidCharacter
	case KindUnexpectedToken:
		return ErrUnexpectedToken
	case KindUnexpectedEnd:
		return ErrUnexpectedEnd
	case KindUnbalancedParens:
		return ErrUnbalancedParens
	case KindDivisionByZero:
		return ErrDivisionByZero
	case KindNonFinite:
		return ErrNonFinite
	case KindTooDeep:
		return ErrTooDeep
	default:
		return nil
	}
}

// Error reports where evaluation failed. Pos is a byte offset into the
// input; Token is the offending source text, empty at end of input.
type Error struct {
	Kind  Kind
	Pos   int
	Token string
}

func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Token, e.Pos)
}

// Is matches ErrInvalidExpression and the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	if target == ErrInvalidExpression {
		return true
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, pos int, token string) *Error {
	return &Error{Kind: kind, Pos: pos, Token: token}
}

// KindOf returns the Kind carried by err, or 0 when err did not come from
// this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
