// Package token defines the lexical vocabulary of the expression language:
// the sealed Token variant type produced by the tokenizer and consumed by
// the compiler and evaluator, together with the immutable operator,
// function, and constant tables.
//
// Tokens are immutable values. A compiled program is a []Instruction, which
// is simply the token sequence reordered into postfix; no separate
// instruction encoding exists.
//
// The tables are package-level, initialized once, and never mutated after
// init. There is no registration mechanism: the recognized operators,
// functions, and constants are fixed at compile time.
package token
