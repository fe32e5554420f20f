package lib

import "unicode"

type charInfo struct {
	ch       rune
	location charLocation
}

func lex(expr string, emit func(token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(expr string, emit func(token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{offset: 0, line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.expr[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	l.currentLocation.offset++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(token{tokType: tokenTypeLParen, location: chInfo.location})
	case ')':
		l.emit(token{tokType: tokenTypeRParen, location: chInfo.location})
	case '+':
		l.emit(token{tokType: tokenTypePlus, location: chInfo.location})
	case '-':
		l.emit(token{tokType: tokenTypeMinus, location: chInfo.location})
	case '*':
		l.emit(token{tokType: tokenTypeAsterisk, location: chInfo.location})
	case '/':
		l.emit(token{tokType: tokenTypeSlash, location: chInfo.location})
	case '^':
		l.emit(token{tokType: tokenTypeCaret, location: chInfo.location})
	case ' ', '\t', '\r', '\n':
		// whitespace separates tokens
	case '.':
		ahead, ok := l.peek(0)
		if ok && isDigit(ahead.ch) {
			return l.scanNumber(chInfo)
		}
		return false, &EvalError{
			Kind:   ErrInvalidNumberLiteral,
			Offset: chInfo.location.offset,
			Text:   ".",
		}
	default:
		if isDigit(ch) {
			return l.scanNumber(chInfo)
		}
		if unicode.IsLetter(ch) {
			l.scanIdent(chInfo)
			return true, nil
		}
		return false, &EvalError{
			Kind:   ErrUnexpectedToken,
			Offset: chInfo.location.offset,
			Text:   string(ch),
		}
	}

	return true, nil
}

func (l *lexer) emit(tok token) {
	l.emitCallback(tok)
}

// scanNumber is entered with the first rune already consumed. A '.' only
// gets here when a digit follows, so the literal always adjoins a digit;
// a second '.' inside the same literal is an error.
func (l *lexer) scanNumber(first charInfo) (bool, error) {
	start := l.currentCharIndex - 1
	hasDecimal := first.ch == '.'

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}
		if next.ch == '.' {
			if hasDecimal {
				_, _ = l.advance()
				return false, &EvalError{
					Kind:   ErrInvalidNumberLiteral,
					Offset: first.location.offset,
					Text:   string(l.expr[start:l.currentCharIndex]),
				}
			}
			hasDecimal = true
		} else if !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	substr := l.expr[start:l.currentCharIndex]
	l.emit(token{tokType: tokenTypeNumber, value: substr, location: first.location})
	return true, nil
}

func (l *lexer) scanIdent(first charInfo) {
	start := l.currentCharIndex - 1

	for {
		next, ok := l.peek(0)
		if !ok || (!unicode.IsLetter(next.ch) && !isDigit(next.ch)) {
			break
		}
		_, _ = l.advance()
	}

	substr := l.expr[start:l.currentCharIndex]
	l.emit(token{tokType: tokenTypeIdent, value: substr, location: first.location})
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
