package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reckon/internal/token"
)

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		in   string
		want []token.Token
	}{
		{"42", []token.Token{token.Number(42)}},
		{"3.25", []token.Token{token.Number(3.25)}},
		{".5", []token.Token{token.Number(0.5)}},
		{"2.", []token.Token{token.Number(2)}},
		{" 7 ", []token.Token{token.Number(7)}},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Tokenize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenize_MalformedNumber(t *testing.T) {
	for _, in := range []string{"1..2", "1.2.3"} {
		_, err := Tokenize(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, HasCode(err, ErrCodeMalformedNumber), "got %v", err)
	}
}

func TestTokenize_Operators(t *testing.T) {
	got, err := Tokenize("1+2-3*4/5^6")
	require.NoError(t, err)
	want := []token.Token{
		token.Number(1), token.OpAdd,
		token.Number(2), token.OpSub,
		token.Number(3), token.OpMul,
		token.Number(4), token.OpDiv,
		token.Number(5), token.OpPow,
		token.Number(6),
	}
	assert.Equal(t, want, got)
}

func TestTokenize_DoubleStarIsPower(t *testing.T) {
	got, err := Tokenize("2**3")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{token.Number(2), token.OpPow, token.Number(3)}, got)
}

func TestTokenize_MinusClassification(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []token.Token
	}{
		{
			name: "first token is prefix",
			in:   "-5",
			want: []token.Token{token.PrefixNegate, token.Number(5)},
		},
		{
			name: "after operator is prefix",
			in:   "2*-5",
			want: []token.Token{token.Number(2), token.OpMul, token.PrefixNegate, token.Number(5)},
		},
		{
			name: "after open paren is prefix",
			in:   "(-5)",
			want: []token.Token{token.ParenOpen, token.PrefixNegate, token.Number(5), token.ParenClose},
		},
		{
			name: "after prefix is prefix",
			in:   "--5",
			want: []token.Token{token.PrefixNegate, token.PrefixNegate, token.Number(5)},
		},
		{
			name: "after root is prefix",
			in:   "√-5",
			want: []token.Token{token.PrefixRoot, token.PrefixNegate, token.Number(5)},
		},
		{
			name: "after comma is prefix",
			in:   "log(2,-8)",
			want: []token.Token{
				token.Func{Spec: token.Functions["log"]}, token.ParenOpen,
				token.Number(2), token.Comma{},
				token.PrefixNegate, token.Number(8), token.ParenClose,
			},
		},
		{
			name: "after number is binary",
			in:   "2-5",
			want: []token.Token{token.Number(2), token.OpSub, token.Number(5)},
		},
		{
			name: "after close paren is binary",
			in:   "(2)-5",
			want: []token.Token{token.ParenOpen, token.Number(2), token.ParenClose, token.OpSub, token.Number(5)},
		},
		{
			name: "after postfix is binary",
			in:   "3!-5",
			want: []token.Token{token.Number(3), token.PostfixFactorial, token.OpSub, token.Number(5)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenize_FunctionsAndConstants(t *testing.T) {
	got, err := Tokenize("sin(pi)")
	require.NoError(t, err)
	require.Len(t, got, 4)
	fn, ok := got[0].(token.Func)
	require.True(t, ok)
	assert.Equal(t, "sin", fn.Spec.Name)
	assert.Equal(t, token.ParenOpen, got[1])
	assert.InDelta(t, 3.14159265, float64(got[2].(token.Number)), 1e-8)
	assert.Equal(t, token.ParenClose, got[3])
}

func TestTokenize_LongestMatchWins(t *testing.T) {
	// "tau" must not be read as "t" + residue or split against shorter
	// symbols; "asin" must win over nothing shorter matching.
	got, err := Tokenize("tau")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 6.28318530, float64(got[0].(token.Number)), 1e-8)

	got, err = Tokenize("asin(1)")
	require.NoError(t, err)
	fn, ok := got[0].(token.Func)
	require.True(t, ok)
	assert.Equal(t, "asin", fn.Spec.Name)
	assert.Equal(t, 1, fn.Spec.Arity)
}

func TestTokenize_FunctionRequiresParen(t *testing.T) {
	for _, in := range []string{"sin", "sin 0", "sin+1"} {
		_, err := Tokenize(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, HasCode(err, ErrCodeMissingFunctionParen), "got %v", err)
	}

	// Whitespace between name and paren is fine.
	got, err := Tokenize("sin (0)")
	require.NoError(t, err)
	_, ok := got[0].(token.Func)
	assert.True(t, ok)
}

func TestTokenize_PostfixAndRoot(t *testing.T) {
	got, err := Tokenize("√9+5!%")
	require.NoError(t, err)
	want := []token.Token{
		token.PrefixRoot, token.Number(9), token.OpAdd,
		token.Number(5), token.PostfixFactorial, token.PostfixPercent,
	}
	assert.Equal(t, want, got)
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	for _, in := range []string{"2$3", "#", "2+x"} {
		_, err := Tokenize(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, HasCode(err, ErrCodeUnknownCharacter), "got %v", err)
	}
}

func TestTokenize_ErrorCarriesPosition(t *testing.T) {
	_, err := Tokenize("12$")
	require.Error(t, err)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Pos)
}
