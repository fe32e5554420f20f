package lib

import "fmt"

type errorKind int

const (
	ErrUnexpectedToken errorKind = iota
	ErrUnexpectedEnd
	ErrDivisionByZero
	ErrInvalidNumberLiteral
	ErrDepthExceeded
)

// EvalError is the only error type produced for malformed or unevaluable
// input. Offset is the rune offset of the offending token (for
// ErrUnexpectedEnd, of the last token seen). Text holds the offending
// token or literal text when there is one.
type EvalError struct {
	Kind   errorKind
	Offset int
	Text   string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("%d -> unexpected token '%s'", e.Offset, e.Text)
	case ErrUnexpectedEnd:
		return fmt.Sprintf("%d -> unexpected end of expression", e.Offset)
	case ErrDivisionByZero:
		return fmt.Sprintf("%d -> division by zero", e.Offset)
	case ErrInvalidNumberLiteral:
		return fmt.Sprintf("%d -> invalid number literal '%s'", e.Offset, e.Text)
	case ErrDepthExceeded:
		return fmt.Sprintf("%d -> expression nested too deeply", e.Offset)
	default:
		return fmt.Sprintf("%d -> unknown error", e.Offset)
	}
}

func unexpectedToken(tok token) *EvalError {
	return &EvalError{
		Kind:   ErrUnexpectedToken,
		Offset: tok.location.offset,
		Text:   tokenText(tok),
	}
}
