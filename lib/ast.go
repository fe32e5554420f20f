package lib

import "math"

type binaryOpType int

const (
	BinaryOpAdd binaryOpType = iota
	BinaryOpSubtract
	BinaryOpMultiply
	BinaryOpDivide
	BinaryOpPower
)

type unaryOpType int

const (
	UnaryOpNegative unaryOpType = iota
)

// Expression is a node of the parsed tree. The tree is strict: children are
// owned by their parent, never shared, so evaluation is a plain recursive
// walk. eval is unexported to keep the set of node types closed.
type Expression interface {
	eval(mode AngleMode) (float64, error)
}

type NumberLiteral struct {
	Value float64
}

type BinaryExpression struct {
	Left       Expression
	Right      Expression
	Op         binaryOpType
	opLocation charLocation
}

type UnaryExpression struct {
	Right Expression
	Op    unaryOpType
}

type FunctionExpression struct {
	Fn  *Function
	Arg Expression
}

func (n NumberLiteral) eval(mode AngleMode) (float64, error) {
	return n.Value, nil
}

func (b BinaryExpression) eval(mode AngleMode) (float64, error) {
	left, err := b.Left.eval(mode)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.eval(mode)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case BinaryOpAdd:
		return left + right, nil
	case BinaryOpSubtract:
		return left - right, nil
	case BinaryOpMultiply:
		return left * right, nil
	case BinaryOpDivide:
		if right == 0 {
			return 0, &EvalError{
				Kind:   ErrDivisionByZero,
				Offset: b.opLocation.offset,
			}
		}
		return left / right, nil
	case BinaryOpPower:
		return math.Pow(left, right), nil
	}

	panic("unknown binary operator")
}

func (u UnaryExpression) eval(mode AngleMode) (float64, error) {
	val, err := u.Right.eval(mode)
	if err != nil {
		return 0, err
	}

	switch u.Op {
	case UnaryOpNegative:
		return -val, nil
	}

	panic("unknown unary operator")
}

func (f FunctionExpression) eval(mode AngleMode) (float64, error) {
	val, err := f.Arg.eval(mode)
	if err != nil {
		return 0, err
	}
	return f.Fn.Apply(val, mode), nil
}
