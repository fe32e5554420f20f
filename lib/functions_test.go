package lib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func applyFn(t *testing.T, name string, v float64, mode AngleMode) float64 {
	f, ok := LookupFunction(name)
	require.True(t, ok, "function %s not registered", name)
	return f.Apply(v, mode)
}

func TestTrigDegrees(t *testing.T) {
	require.InDelta(t, 1, applyFn(t, "sin", 90, AngleModeDegrees), 1e-9)
	require.InDelta(t, 0.5, applyFn(t, "sin", 30, AngleModeDegrees), 1e-9)
	require.InDelta(t, 1, applyFn(t, "cos", 0, AngleModeDegrees), 1e-9)
	require.InDelta(t, 1, applyFn(t, "tan", 45, AngleModeDegrees), 1e-9)
}

func TestTrigRadians(t *testing.T) {
	require.InDelta(t, 1, applyFn(t, "sin", math.Pi/2, AngleModeRadians), 1e-9)
	require.InDelta(t, -1, applyFn(t, "cos", math.Pi, AngleModeRadians), 1e-9)
}

func TestTrigGradians(t *testing.T) {
	require.InDelta(t, 1, applyFn(t, "sin", 100, AngleModeGradians), 1e-9)
	require.InDelta(t, 0, applyFn(t, "cos", 100, AngleModeGradians), 1e-9)
}

func TestInverseTrigHonorsMode(t *testing.T) {
	require.InDelta(t, 90, applyFn(t, "asin", 1, AngleModeDegrees), 1e-9)
	require.InDelta(t, math.Pi/2, applyFn(t, "asin", 1, AngleModeRadians), 1e-9)
	require.InDelta(t, 100, applyFn(t, "asin", 1, AngleModeGradians), 1e-9)
	require.InDelta(t, 45, applyFn(t, "atan", 1, AngleModeDegrees), 1e-9)
}

func TestReciprocalTrig(t *testing.T) {
	require.InDelta(t, 2, applyFn(t, "cosec", 30, AngleModeDegrees), 1e-9)
	require.InDelta(t, 2, applyFn(t, "sec", 60, AngleModeDegrees), 1e-9)
	require.InDelta(t, 1, applyFn(t, "cot", 45, AngleModeDegrees), 1e-9)
	require.InDelta(t, 30, applyFn(t, "acosec", 2, AngleModeDegrees), 1e-9)
}

func TestHyperbolicsIgnoreMode(t *testing.T) {
	require.InDelta(t, math.Sinh(1), applyFn(t, "sinh", 1, AngleModeDegrees), 1e-9)
	require.InDelta(t, math.Sinh(1), applyFn(t, "sinh", 1, AngleModeRadians), 1e-9)
	require.InDelta(t, 1, applyFn(t, "atanh", math.Tanh(1), AngleModeDegrees), 1e-9)
}

func TestLogs(t *testing.T) {
	require.InDelta(t, 7, applyFn(t, "log", 1e7, AngleModeDegrees), 1e-9)
	require.InDelta(t, 7, applyFn(t, "log2", 128, AngleModeDegrees), 1e-9)
	require.InDelta(t, 7, applyFn(t, "ln", math.Exp(7), AngleModeDegrees), 1e-9)
	require.InDelta(t, math.E, applyFn(t, "exp", 1, AngleModeDegrees), 1e-9)
}

func TestSqrtOfNegativeIsNaN(t *testing.T) {
	require.True(t, math.IsNaN(applyFn(t, "sqrt", -7.456, AngleModeDegrees)))
}

func TestRounding(t *testing.T) {
	require.Equal(t, 4.0, applyFn(t, "ceil", 3.2, AngleModeDegrees))
	require.Equal(t, 3.0, applyFn(t, "floor", 3.8, AngleModeDegrees))
	require.Equal(t, 7.456, applyFn(t, "abs", -7.456, AngleModeDegrees))
}

func TestFactorial(t *testing.T) {
	require.Equal(t, 1.0, applyFn(t, "factorial", 1, AngleModeDegrees))
	require.Equal(t, 120.0, applyFn(t, "factorial", 5, AngleModeDegrees))
	require.InDelta(t, 3.041409e64, applyFn(t, "factorial", 50, AngleModeDegrees), 1e59)
}

func TestFactorialNonInteger(t *testing.T) {
	require.True(t, math.IsNaN(applyFn(t, "factorial", 5.5, AngleModeDegrees)))
}

func TestFactorialOverflowSaturates(t *testing.T) {
	require.True(t, math.IsInf(applyFn(t, "factorial", 300, AngleModeDegrees), 1))
}

func TestFunctionsSorted(t *testing.T) {
	all := Functions()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		require.True(t, all[i-1].Name() < all[i].Name())
	}
}

func TestLookupConstantAliases(t *testing.T) {
	pi, ok := LookupConstant("pi")
	require.True(t, ok)
	require.Equal(t, math.Pi, pi)

	piGlyph, ok := LookupConstant("π")
	require.True(t, ok)
	require.Equal(t, pi, piGlyph)

	_, ok = LookupConstant("nope")
	require.False(t, ok)
}
