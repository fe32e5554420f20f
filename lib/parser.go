package lib

import "strconv"

// maxNestingDepth caps recursion through parentheses, function calls and
// unary minus chains so adversarial input fails cleanly instead of
// exhausting the stack.
const maxNestingDepth = 200

type parser struct {
	reader       tokenReader
	depth        int
	lastLocation charLocation
}

// scan parses one complete expression and requires the token stream to be
// exhausted afterwards. Trailing tokens are a syntax error.
func (p *parser) scan() (Expression, error) {
	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	next, done, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, unexpectedToken(next)
	}

	return expr, nil
}

// expr := term (('+' | '-') term)*
func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanTerm()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		var op binaryOpType
		switch opToken.tokType {
		case tokenTypePlus:
			op = BinaryOpAdd
		case tokenTypeMinus:
			op = BinaryOpSubtract
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.scanTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{
			Left:       left,
			Right:      right,
			Op:         op,
			opLocation: opToken.location,
		}
	}

	return left, nil
}

// term := power (('*' | '/') power)*
func (p *parser) scanTerm() (Expression, error) {
	left, err := p.scanPower()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		var op binaryOpType
		switch opToken.tokType {
		case tokenTypeAsterisk:
			op = BinaryOpMultiply
		case tokenTypeSlash:
			op = BinaryOpDivide
		default:
			return left, nil
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.scanPower()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{
			Left:       left,
			Right:      right,
			Op:         op,
			opLocation: opToken.location,
		}
	}

	return left, nil
}

// power := factor ('^' factor)*
func (p *parser) scanPower() (Expression, error) {
	left, err := p.scanFactor()
	if err != nil {
		return nil, err
	}

	for {
		opToken, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done || opToken.tokType != tokenTypeCaret {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.scanFactor()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{
			Left:       left,
			Right:      right,
			Op:         BinaryOpPower,
			opLocation: opToken.location,
		}
	}

	return left, nil
}

// factor := Number | Ident '(' expr ')' | Ident | '(' expr ')' | '-' factor
func (p *parser) scanFactor() (Expression, error) {
	tok, done, err := p.next()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, p.unexpectedEnd()
	}

	switch tok.tokType {
	case tokenTypeNumber:
		value, err := strconv.ParseFloat(string(tok.value), 64)
		if err != nil {
			return nil, &EvalError{
				Kind:   ErrInvalidNumberLiteral,
				Offset: tok.location.offset,
				Text:   string(tok.value),
			}
		}
		return NumberLiteral{Value: value}, nil

	case tokenTypeMinus:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		right, err := p.scanFactor()
		p.depth--
		if err != nil {
			return nil, err
		}
		return UnaryExpression{Right: right, Op: UnaryOpNegative}, nil

	case tokenTypeLParen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		expr, err := p.scanParenthetical()
		p.depth--
		return expr, err

	case tokenTypeIdent:
		return p.scanIdent(tok)
	}

	return nil, unexpectedToken(tok)
}

// Reads after '(' and consumes the matching ')'.
func (p *parser) scanParenthetical() (Expression, error) {
	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}
	if err := p.requireToken(tokenTypeRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// An identifier followed by '(' must name a function; a bare identifier
// must name a constant. Anything else is a syntax error carrying the
// identifier text.
func (p *parser) scanIdent(tok token) (Expression, error) {
	next, done, err := p.reader.Peek()
	if err != nil {
		return nil, err
	}

	if !done && next.tokType == tokenTypeLParen {
		fn, ok := LookupFunction(string(tok.value))
		if !ok {
			return nil, unexpectedToken(tok)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.enter(next); err != nil {
			return nil, err
		}
		arg, err := p.scanParenthetical()
		p.depth--
		if err != nil {
			return nil, err
		}
		return FunctionExpression{Fn: fn, Arg: arg}, nil
	}

	value, ok := LookupConstant(string(tok.value))
	if !ok {
		return nil, unexpectedToken(tok)
	}
	return NumberLiteral{Value: value}, nil
}

func (p *parser) enter(tok token) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &EvalError{
			Kind:   ErrDepthExceeded,
			Offset: tok.location.offset,
		}
	}
	return nil
}

func (p *parser) next() (token, bool, error) {
	tok, done, err := p.reader.Next()
	if err == nil && !done {
		p.lastLocation = tok.location
	}
	return tok, done, err
}

func (p *parser) advance() error {
	_, _, err := p.next()
	return err
}

func (p *parser) requireToken(tokType tokenType) error {
	next, done, err := p.next()
	if err != nil {
		return err
	}
	if done {
		return p.unexpectedEnd()
	}
	if next.tokType != tokType {
		return unexpectedToken(next)
	}
	return nil
}

func (p *parser) unexpectedEnd() *EvalError {
	return &EvalError{
		Kind:   ErrUnexpectedEnd,
		Offset: p.lastLocation.offset,
	}
}
