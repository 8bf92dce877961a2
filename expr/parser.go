package expr

// maxDepth bounds parenthesis and unary-minus nesting.
const maxDepth = 256

type parser struct {
	toks  []Token
	pos   int
	depth int
	opens []Token
}

// Parse builds the syntax tree for s.
func Parse(s string) (Node, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().Kind == TokenEOF {
		return nil, newError(KindUnexpectedEnd, p.peek().Start, "")
	}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		if tok.Kind == TokenRParen {
			return nil, newError(KindUnbalancedParens, tok.Start, tok.Text)
		}
		return nil, newError(KindUnexpectedToken, tok.Start, tok.Text)
	}
	return n, nil
}

// Eval validates, parses, and evaluates s. Surrounding whitespace is
// ignored.
func Eval(s string) (float64, error) {
	s = TrimSpace(s)
	if err := Validate(s); err != nil {
		return 0, err
	}
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return n.Eval()
}

// Evaluate is Eval followed by Format.
func Evaluate(s string) (string, error) {
	v, err := Eval(s)
	if err != nil {
		return "", err
	}
	return Format(v)
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpression() (Node, error) {
	x, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != TokenPlus && op.Kind != TokenMinus {
			return x, nil
		}
		p.next()
		y, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op.Kind, X: x, Y: y, OpPos: op.Start, Offset: x.Pos()}
	}
}

func (p *parser) parseTerm() (Node, error) {
	x, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != TokenStar && op.Kind != TokenSlash {
			return x, nil
		}
		p.next()
		y, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: op.Kind, X: x, Y: y, OpPos: op.Start, Offset: x.Pos()}
	}
}

func (p *parser) parseFactor() (Node, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenNumber:
		return parseNumber(tok)
	case TokenMinus:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		x, err := p.parseFactor()
		p.depth--
		if err != nil {
			return nil, err
		}
		return &Neg{X: x, Offset: tok.Start}, nil
	case TokenLParen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		p.opens = append(p.opens, tok)
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		if closing.Kind != TokenRParen {
			if closing.Kind == TokenEOF {
				open := p.opens[len(p.opens)-1]
				return nil, newError(KindUnbalancedParens, open.Start, open.Text)
			}
			return nil, newError(KindUnexpectedToken, closing.Start, closing.Text)
		}
		p.opens = p.opens[:len(p.opens)-1]
		p.depth--
		return x, nil
	case TokenEOF:
		if len(p.opens) > 0 {
			open := p.opens[len(p.opens)-1]
			return nil, newError(KindUnbalancedParens, open.Start, open.Text)
		}
		return nil, newError(KindUnexpectedEnd, tok.Start, "")
	default:
		return nil, newError(KindUnexpectedToken, tok.Start, tok.Text)
	}
}

func (p *parser) enter(tok Token) error {
	p.depth++
	if p.depth > maxDepth {
		return newError(KindTooDeep, tok.Start, tok.Text)
	}
	return nil
}
