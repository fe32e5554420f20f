package lib

import (
	"fmt"
	"strings"
)

// AngleMode selects how trigonometric functions interpret their argument.
type AngleMode int

const (
	AngleModeDegrees AngleMode = iota
	AngleModeRadians
	AngleModeGradians
)

func (m AngleMode) String() string {
	switch m {
	case AngleModeDegrees:
		return "Degrees"
	case AngleModeRadians:
		return "Radians"
	case AngleModeGradians:
		return "Grads"
	default:
		return "?"
	}
}

func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "degrees", "deg":
		return AngleModeDegrees, nil
	case "radians", "rad":
		return AngleModeRadians, nil
	case "grads", "gradians", "grad":
		return AngleModeGradians, nil
	}
	return AngleModeDegrees, fmt.Errorf("unknown angle mode '%s'", s)
}

// Evaluator evaluates expressions under a fixed angle mode. The zero value
// uses degrees. Evaluations share no state, so one Evaluator may be used
// from any number of goroutines.
type Evaluator struct {
	Mode AngleMode
}

// Evaluate parses and computes expression, returning its value or an
// *EvalError describing the first problem found. The lexer runs in its own
// goroutine feeding a token buffer, and the parser consumes it with one
// token of lookahead.
func (e Evaluator) Evaluate(expression string) (float64, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}
	var lexErr error = nil

	go (func() {
		lexErr = lex(expression, buffer.Write)
		buffer.Done()
	})()

	tree, err := p.scan()

	// Only consult lexErr once the parser has drained the stream: receiving
	// done happens after lex returned, so the read is safe. A lexing error
	// truncates the stream, which is what usually tripped the parser.
	if buffer.finished() && lexErr != nil {
		err = lexErr
	}
	if err != nil {
		return 0, err
	}

	return tree.eval(e.Mode)
}

// Evaluate computes expression in the default angle mode (degrees).
func Evaluate(expression string) (float64, error) {
	return Evaluator{}.Evaluate(expression)
}
