package test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shartrec/my_calculator/lib"
)

func TestAll(t *testing.T) {
	scripts, err := lib.Evaluator{}.ReadScriptsFromDir("testdata")
	require.NoError(t, err)
	require.Len(t, scripts, 2)

	basic := scripts[0]
	require.Equal(t, "basic", basic.Name)
	require.False(t, basic.Failed())
	require.Len(t, basic.Results, 6)
	require.InDelta(t, 14, basic.Results[0].Value, 1e-9)
	require.InDelta(t, 20, basic.Results[1].Value, 1e-9)
	require.InDelta(t, -6, basic.Results[2].Value, 1e-9)
	require.InDelta(t, 5, basic.Results[3].Value, 1e-9)
	require.InDelta(t, 2*math.Pi, basic.Results[4].Value, 1e-9)
	require.InDelta(t, 1, basic.Results[5].Value, 1e-9)

	errors := scripts[1]
	require.Equal(t, "errors", errors.Name)
	require.True(t, errors.Failed())
	require.Len(t, errors.Results, 4)
	for _, r := range errors.Results {
		require.Error(t, r.Err, "line %d: %s", r.Line, r.Expression)
		_, ok := r.Err.(*lib.EvalError)
		require.True(t, ok)
	}
}

func TestRadiansEndToEnd(t *testing.T) {
	ev := lib.Evaluator{Mode: lib.AngleModeRadians}
	value, err := ev.Evaluate("cos(2 * pi)")
	require.NoError(t, err)
	require.InDelta(t, 1, value, 1e-9)
}
