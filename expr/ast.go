package expr

import (
	"math"
	"strconv"
	"strings"
)

// Node is a parsed expression.
type Node interface {
	// Eval computes the node's value.
	Eval() (float64, error)
	// Pos is the byte offset of the node's first token.
	Pos() int
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value  float64
	Text   string
	Offset int
}

func (n *Number) Eval() (float64, error) { return n.Value, nil }
func (n *Number) Pos() int               { return n.Offset }
func (n *Number) String() string         { return n.Text }

// Neg is unary minus.
type Neg struct {
	X      Node
	Offset int
}

func (n *Neg) Eval() (float64, error) {
	v, err := n.X.Eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *Neg) Pos() int       { return n.Offset }
func (n *Neg) String() string { return "(-" + n.X.String() + ")" }

// Binary is one of the four arithmetic operators applied to X and Y.
type Binary struct {
	Op     TokenKind
	X, Y   Node
	OpPos  int
	Offset int
}

func (n *Binary) Pos() int { return n.Offset }

func (n *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(n.X.String())
	sb.WriteByte(' ')
	sb.WriteString(n.Op.String())
	sb.WriteByte(' ')
	sb.WriteString(n.Y.String())
	sb.WriteByte(')')
	return sb.String()
}

func (n *Binary) Eval() (float64, error) {
	x, err := n.X.Eval()
	if err != nil {
		return 0, err
	}
	y, err := n.Y.Eval()
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.Op {
	case TokenPlus:
		v = x + y
	case TokenMinus:
		v = x - y
	case TokenStar:
		v = x * y
	case TokenSlash:
		if y == 0 {
			return 0, newError(KindDivisionByZero, n.OpPos, "/")
		}
		v = x / y
	default:
		return 0, newError(KindUnexpectedToken, n.OpPos, n.Op.String())
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, newError(KindNonFinite, n.OpPos, n.Op.String())
	}
	return v, nil
}

func parseNumber(tok Token) (*Number, error) {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		// ParseFloat reports ErrRange with ±Inf for literals past float64.
		if math.IsInf(v, 0) {
			return nil, newError(KindNonFinite, tok.Start, tok.Text)
		}
		return nil, newError(KindUnexpectedToken, tok.Start, tok.Text)
	}
	return &Number{Value: v, Text: tok.Text, Offset: tok.Start}, nil
}
