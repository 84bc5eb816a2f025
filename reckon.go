// Package reckon evaluates user-typed arithmetic expressions without
// handing them to any general-purpose execution facility.
//
// The surface is deliberately two functions. Compute runs the full
// pipeline (normalization, tokenization, shunting-yard compilation to
// postfix, stack evaluation) and Format renders any successfully
// computed value for display. Callers (a UI, a REPL, a history store)
// depend on nothing else.
//
// The recognized grammar covers numbers with one decimal point, the
// operators + - * / ^ (with ** as a synonym for ^), parentheses, comma
// as a function-argument separator, prefix √ and contextual unary minus,
// postfix ! and %, absolute-value bars |x|, calls to a fixed function
// table, and multi-character constant symbols.
//
// Every failure is a descriptive error value local to the offending
// call; nothing is retained between calls and concurrent use is safe.
package reckon

import (
	"github.com/roach88/reckon/internal/compiler"
	"github.com/roach88/reckon/internal/engine"
	"github.com/roach88/reckon/internal/token"
)

// Compute evaluates an expression string to a float64.
//
// Errors are *compiler.CompileError (lexical and structural problems in
// the input text) or *engine.EvalError (arithmetic problems during
// execution), both carrying stable codes. The input itself determines
// the outcome: retrying an identical string reproduces the same result
// or failure.
func Compute(src string) (float64, error) {
	program, err := compile(src)
	if err != nil {
		return 0, err
	}
	return engine.Evaluate(program)
}

// Format renders a computed value for display: 12 significant digits,
// no trailing fractional zeros, integer collapse for whole values.
// It never fails; non-finite values render in their literal form.
func Format(f float64) string {
	return engine.Format(f)
}

func compile(src string) ([]token.Instruction, error) {
	normalized, err := compiler.Normalize(src)
	if err != nil {
		return nil, err
	}
	tokens, err := compiler.Tokenize(normalized)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(tokens)
}
