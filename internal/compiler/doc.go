// Package compiler turns user-typed expression text into a postfix
// instruction sequence.
//
// Compilation is a three-stage pipeline, each stage pure and independently
// testable:
//
//	Normalize: Unicode NFC pass, then absolute-value bars rewritten into
//	           abs(...) calls with balance validation.
//	Tokenize:  normalized text to an ordered token sequence, longest-match
//	           first for names, contextual classification of unary minus.
//	Compile:   shunting-yard conversion of the token sequence to postfix,
//	           extended for function calls and prefix/postfix unaries.
//
// All failures are CompileError values with a stable code; nothing here
// panics on bad input.
package compiler
