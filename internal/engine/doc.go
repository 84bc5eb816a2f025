// Package engine executes compiled postfix programs against a value
// stack.
//
// The stack holds operands, not bare floats: an operand is either a plain
// number or a percent marker. The marker is created by the postfix %
// instruction and resolved by the very next consumer; '%' has no fixed
// numeric meaning on its own (100+10% adds ten percent of 100, while
// 2*50% multiplies by one half). A marker never survives unresolved
// across more than one consuming step.
//
// Evaluation is single-pass, allocation-light, and shares no mutable
// state between calls; concurrent use needs no locking.
package engine
