package engine

import "github.com/roach88/reckon/internal/token"

// operand is a sealed interface for values on the evaluation stack.
// Only number and percentMarker implement this.
type operand interface {
	operand() // Sealed - only these types implement it
}

// number is a plain real value.
type number float64

func (number) operand() {}

// percentMarker is a deferred %-suffixed value. Its numeric meaning is
// decided by whichever operation consumes it next.
type percentMarker struct {
	raw float64
}

func (percentMarker) operand() {}

// fraction is the context-free reading of the marker: raw/100.
func (m percentMarker) fraction() float64 {
	return m.raw / 100
}

// resolveCtx describes the operation consuming an operand: the binary
// operator symbol and the already-resolved left operand, when one exists.
type resolveCtx struct {
	op      token.Operator
	left    float64
	hasLeft bool
}

// resolve reduces an operand to a plain float64.
//
// A plain number resolves to itself. A percent marker resolves to
// left*raw/100 when consumed by + or - (a percentage of the preceding
// value) and to the bare fraction raw/100 in every other position.
// A marker consumed by + or - with no left value cannot be given a
// meaning and fails.
func resolve(op operand, ctx *resolveCtx) (float64, error) {
	switch v := op.(type) {
	case number:
		return float64(v), nil
	case percentMarker:
		if ctx != nil && (ctx.op == token.OpAdd || ctx.op == token.OpSub) {
			if !ctx.hasLeft {
				return 0, newError(ErrCodePercentRequiresLeft, "%s%% needs a preceding value", token.String(token.Number(v.raw)))
			}
			return ctx.left * v.raw / 100, nil
		}
		return v.fraction(), nil
	default:
		return 0, newError(ErrCodeMalformedExpression, "unknown operand type %T", op)
	}
}
