package token

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperators_PrecedenceAndAssociativity(t *testing.T) {
	assert.Equal(t, Operators[OpAdd].Precedence, Operators[OpSub].Precedence)
	assert.Equal(t, Operators[OpMul].Precedence, Operators[OpDiv].Precedence)
	assert.Less(t, Operators[OpAdd].Precedence, Operators[OpMul].Precedence)
	assert.Less(t, Operators[OpMul].Precedence, Operators[OpPow].Precedence)

	for sym, spec := range Operators {
		if sym == OpPow {
			assert.True(t, spec.RightAssoc, "^ must be right-associative")
		} else {
			assert.False(t, spec.RightAssoc, "%s must be left-associative", sym)
		}
	}
}

func TestFunctions_ArityAndGuards(t *testing.T) {
	tests := []struct {
		fn      string
		args    []float64
		want    float64
		wantErr bool
	}{
		{fn: "sin", args: []float64{0}, want: 0},
		{fn: "cos", args: []float64{0}, want: 1},
		{fn: "abs", args: []float64{-3}, want: 3},
		{fn: "sqrt", args: []float64{16}, want: 4},
		{fn: "sqrt", args: []float64{-1}, wantErr: true},
		{fn: "ln", args: []float64{math.E}, want: 1},
		{fn: "ln", args: []float64{0}, wantErr: true},
		{fn: "ln", args: []float64{-1}, wantErr: true},
		{fn: "log", args: []float64{2, 8}, want: 3},
		{fn: "log", args: []float64{1, 8}, wantErr: true},
		{fn: "log", args: []float64{-2, 8}, wantErr: true},
		{fn: "log", args: []float64{2, -8}, wantErr: true},
		{fn: "asin", args: []float64{1}, want: math.Pi / 2},
		{fn: "asin", args: []float64{1.5}, wantErr: true},
		{fn: "acos", args: []float64{-2}, wantErr: true},
		{fn: "min", args: []float64{2, -7}, want: -7},
		{fn: "max", args: []float64{2, -7}, want: 2},
		{fn: "pow", args: []float64{2, 10}, want: 1024},
	}

	for _, tc := range tests {
		spec, ok := Functions[tc.fn]
		require.True(t, ok, "function %s missing", tc.fn)
		require.Len(t, tc.args, spec.Arity, "case arity mismatch for %s", tc.fn)

		got, err := spec.Apply(tc.args)
		if tc.wantErr {
			require.Error(t, err, "%s(%v)", tc.fn, tc.args)
			var de *DomainError
			assert.ErrorAs(t, err, &de)
			continue
		}
		require.NoError(t, err, "%s(%v)", tc.fn, tc.args)
		assert.InDelta(t, tc.want, got, 1e-12)
	}
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, Constants["pi"], 0)
	assert.InDelta(t, math.E, Constants["e"], 0)
	assert.InDelta(t, math.Phi, Constants["phi"], 0)
	assert.InDelta(t, 2*math.Pi, Constants["tau"], 0)
}

func TestSymbolOrdering_LongestFirst(t *testing.T) {
	for _, symbols := range [][]string{FunctionNames(), ConstantSymbols()} {
		for i := 1; i < len(symbols); i++ {
			assert.GreaterOrEqual(t, len(symbols[i-1]), len(symbols[i]),
				"%q must not come after %q", symbols[i-1], symbols[i])
		}
	}

	// The ordering exists so that no symbol can shadow a longer one that
	// it prefixes.
	pi := -1
	for i, sym := range ConstantSymbols() {
		if sym == "pi" {
			pi = i
		}
	}
	require.NotEqual(t, -1, pi)
	for i := 0; i < pi; i++ {
		assert.False(t, strings.HasPrefix(ConstantSymbols()[i], "pi"))
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Token
		want string
	}{
		{Number(5), "5"},
		{Number(2.5), "2.5"},
		{OpPow, "^"},
		{ParenOpen, "("},
		{Comma{}, ","},
		{PrefixRoot, "√"},
		{PrefixNegate, "-"},
		{PostfixFactorial, "!"},
		{PostfixPercent, "%"},
		{Func{Spec: Functions["sin"]}, "sin"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, String(tc.in))
	}
}
