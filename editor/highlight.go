package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/abacus/calc"
	"github.com/iw2rmb/abacus/expr"
)

// tokenStyles returns one base style per cluster, chosen by the lexical
// token the cluster belongs to.
func (m Model) tokenStyles(clusters []string) []lipgloss.Style {
	st := m.cfg.Style
	out := make([]lipgloss.Style, len(clusters))

	text := m.buf.Text()
	if text == calc.ErrorText {
		for i := range out {
			out[i] = st.Error
		}
		return out
	}

	toks := expr.Scan(text)
	ti := 0
	off := 0
	for i, c := range clusters {
		for ti < len(toks) && toks[ti].End <= off {
			ti++
		}
		out[i] = st.Text
		if ti < len(toks) {
			out[i] = styleForToken(st, toks[ti].Kind)
		}
		off += len(c)
	}
	return out
}

func styleForToken(st Style, k expr.TokenKind) lipgloss.Style {
	switch k {
	case expr.TokenNumber:
		return st.Number
	case expr.TokenPlus, expr.TokenMinus, expr.TokenStar, expr.TokenSlash:
		return st.Operator
	case expr.TokenLParen, expr.TokenRParen:
		return st.Paren
	case expr.TokenInvalid:
		return st.Invalid
	default:
		return st.Text
	}
}
