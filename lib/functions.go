package lib

import (
	"math"
	"sort"
)

// Function is a named unary function usable in expressions, eg. "sin(90)".
// Trigonometric functions honor the evaluator's angle mode; everything else
// ignores it.
type Function struct {
	name  string
	apply func(v float64, mode AngleMode) float64
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Apply(v float64, mode AngleMode) float64 {
	return f.apply(v, mode)
}

func LookupFunction(name string) (*Function, bool) {
	f, ok := functionRegister[name]
	return f, ok
}

// Functions returns every registered function, sorted by name.
func Functions() []*Function {
	all := make([]*Function, 0, len(functionRegister))
	for _, f := range functionRegister {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	return all
}

func toRadians(v float64, mode AngleMode) float64 {
	switch mode {
	case AngleModeRadians:
		return v
	case AngleModeGradians:
		return (v * 0.9) * math.Pi / 180
	default:
		return v * math.Pi / 180
	}
}

func fromRadians(r float64, mode AngleMode) float64 {
	switch mode {
	case AngleModeRadians:
		return r
	case AngleModeGradians:
		return (r * 180 / math.Pi) / 0.9
	default:
		return r * 180 / math.Pi
	}
}

func doTrig(v float64, mode AngleMode, f func(float64) float64) float64 {
	return f(toRadians(v, mode))
}

func doATrig(v float64, mode AngleMode, f func(float64) float64) float64 {
	return fromRadians(f(v), mode)
}

// Values above 170 overflow float64, so the result saturates to +Inf.
// Non-integer arguments have no factorial here and yield NaN.
func factorial(v float64) float64 {
	if v > 170 {
		return math.Inf(1)
	}
	if v != math.Floor(v) {
		return math.NaN()
	}
	product := 1.0
	for i := 2; i < int(v); i++ {
		product *= float64(i)
	}
	return product * v
}

var functionRegister = map[string]*Function{
	"sin": {
		name:  "sin",
		apply: func(v float64, mode AngleMode) float64 { return doTrig(v, mode, math.Sin) },
	},
	"cos": {
		name:  "cos",
		apply: func(v float64, mode AngleMode) float64 { return doTrig(v, mode, math.Cos) },
	},
	"tan": {
		name:  "tan",
		apply: func(v float64, mode AngleMode) float64 { return doTrig(v, mode, math.Tan) },
	},
	"asin": {
		name:  "asin",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(v, mode, math.Asin) },
	},
	"acos": {
		name:  "acos",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(v, mode, math.Acos) },
	},
	"atan": {
		name:  "atan",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(v, mode, math.Atan) },
	},
	"cosec": {
		name:  "cosec",
		apply: func(v float64, mode AngleMode) float64 { return 1 / doTrig(v, mode, math.Sin) },
	},
	"sec": {
		name:  "sec",
		apply: func(v float64, mode AngleMode) float64 { return 1 / doTrig(v, mode, math.Cos) },
	},
	"cot": {
		name:  "cot",
		apply: func(v float64, mode AngleMode) float64 { return 1 / doTrig(v, mode, math.Tan) },
	},
	"acosec": {
		name:  "acosec",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(1/v, mode, math.Asin) },
	},
	"asec": {
		name:  "asec",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(1/v, mode, math.Acos) },
	},
	"acot": {
		name:  "acot",
		apply: func(v float64, mode AngleMode) float64 { return doATrig(1/v, mode, math.Atan) },
	},
	"sinh": {
		name:  "sinh",
		apply: func(v float64, _ AngleMode) float64 { return math.Sinh(v) },
	},
	"cosh": {
		name:  "cosh",
		apply: func(v float64, _ AngleMode) float64 { return math.Cosh(v) },
	},
	"tanh": {
		name:  "tanh",
		apply: func(v float64, _ AngleMode) float64 { return math.Tanh(v) },
	},
	"asinh": {
		name:  "asinh",
		apply: func(v float64, _ AngleMode) float64 { return math.Asinh(v) },
	},
	"acosh": {
		name:  "acosh",
		apply: func(v float64, _ AngleMode) float64 { return math.Acosh(v) },
	},
	"atanh": {
		name:  "atanh",
		apply: func(v float64, _ AngleMode) float64 { return math.Atanh(v) },
	},
	"exp": {
		name:  "exp",
		apply: func(v float64, _ AngleMode) float64 { return math.Exp(v) },
	},
	"ln": {
		name:  "ln",
		apply: func(v float64, _ AngleMode) float64 { return math.Log(v) },
	},
	"log": {
		name:  "log",
		apply: func(v float64, _ AngleMode) float64 { return math.Log10(v) },
	},
	"log2": {
		name:  "log2",
		apply: func(v float64, _ AngleMode) float64 { return math.Log2(v) },
	},
	"sqrt": {
		name:  "sqrt",
		apply: func(v float64, _ AngleMode) float64 { return math.Sqrt(v) },
	},
	"abs": {
		name:  "abs",
		apply: func(v float64, _ AngleMode) float64 { return math.Abs(v) },
	},
	"ceil": {
		name:  "ceil",
		apply: func(v float64, _ AngleMode) float64 { return math.Ceil(v) },
	},
	"floor": {
		name:  "floor",
		apply: func(v float64, _ AngleMode) float64 { return math.Floor(v) },
	},
	"factorial": {
		name:  "factorial",
		apply: func(v float64, _ AngleMode) float64 { return factorial(v) },
	},
}
