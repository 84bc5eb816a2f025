package engine

import (
	"errors"
	"math"

	"github.com/roach88/reckon/internal/token"
)

// maxFactorial is the largest n with n! representable as a float64.
const maxFactorial = 170

// Evaluate executes a postfix program and returns its single result.
func Evaluate(program []token.Instruction) (float64, error) {
	result, _, err := run(program, false)
	return result, err
}

// TraceStep records the execution of one instruction for diagnostic
// output: its sequence number, source-level spelling, and the stack depth
// after it ran.
type TraceStep struct {
	Seq         int    `json:"seq"`
	Instruction string `json:"instruction"`
	Depth       int    `json:"depth"`
}

// EvaluateTrace executes a postfix program and additionally returns a
// per-instruction trace. The trace covers every instruction that ran,
// including the failing one when an error is returned.
func EvaluateTrace(program []token.Instruction) (float64, []TraceStep, error) {
	return run(program, true)
}

func run(program []token.Instruction, traced bool) (float64, []TraceStep, error) {
	var (
		stack []operand
		trace []TraceStep
	)
	if traced {
		trace = make([]TraceStep, 0, len(program))
	}

	push := func(v operand) { stack = append(stack, v) }
	pop := func() operand {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for i, ins := range program {
		if traced {
			trace = append(trace, TraceStep{Seq: i, Instruction: token.String(ins)})
		}
		record := func() {
			if traced {
				trace[len(trace)-1].Depth = len(stack)
			}
		}

		switch ins := ins.(type) {
		case token.Number:
			push(number(ins))

		case token.Prefix:
			if len(stack) < 1 {
				return 0, trace, newError(ErrCodeInsufficientOperands, "%s has no operand", token.String(ins))
			}
			v, err := resolve(pop(), nil)
			if err != nil {
				return 0, trace, err
			}
			switch ins {
			case token.PrefixRoot:
				if v < 0 {
					return 0, trace, newError(ErrCodeNegativeRoot, "root of negative value %v", v)
				}
				push(number(math.Sqrt(v)))
			case token.PrefixNegate:
				push(number(-v))
			}

		case token.Func:
			spec := ins.Spec
			if len(stack) < spec.Arity {
				return 0, trace, newError(ErrCodeInsufficientOperands,
					"%s needs %d argument(s), stack has %d", spec.Name, spec.Arity, len(stack))
			}
			// Arguments were pushed left to right; pop in reverse.
			args := make([]float64, spec.Arity)
			for j := spec.Arity - 1; j >= 0; j-- {
				v, err := resolve(pop(), nil)
				if err != nil {
					return 0, trace, err
				}
				args[j] = v
			}
			result, err := spec.Apply(args)
			if err != nil {
				var de *token.DomainError
				if errors.As(err, &de) {
					return 0, trace, newError(ErrCodeDomainViolation, "%s", de.Error())
				}
				return 0, trace, err
			}
			push(number(result))

		case token.Operator:
			if len(stack) < 2 {
				return 0, trace, newError(ErrCodeInsufficientOperands,
					"operator %s needs two operands, stack has %d", ins, len(stack))
			}
			rightOp, leftOp := pop(), pop()
			left, err := resolve(leftOp, nil)
			if err != nil {
				return 0, trace, err
			}
			right, err := resolve(rightOp, &resolveCtx{op: ins, left: left, hasLeft: true})
			if err != nil {
				return 0, trace, err
			}
			if ins == token.OpDiv && right == 0 {
				return 0, trace, newError(ErrCodeDivisionByZero, "%v / 0", left)
			}
			push(number(token.Operators[ins].Apply(left, right)))

		case token.Postfix:
			if len(stack) < 1 {
				return 0, trace, newError(ErrCodeInsufficientOperands, "%s has no operand", token.String(ins))
			}
			v, err := resolve(pop(), nil)
			if err != nil {
				return 0, trace, err
			}
			switch ins {
			case token.PostfixFactorial:
				f, err := factorial(v)
				if err != nil {
					return 0, trace, err
				}
				push(number(f))
			case token.PostfixPercent:
				push(percentMarker{raw: v})
			}

		default:
			// Parens and commas never reach a compiled program.
			return 0, trace, newError(ErrCodeMalformedExpression, "unexpected instruction %s", token.String(ins))
		}
		record()
	}

	if len(stack) != 1 {
		return 0, trace, newError(ErrCodeMalformedExpression,
			"evaluation left %d values on the stack", len(stack))
	}
	return resolveFinal(stack[0], trace)
}

func resolveFinal(op operand, trace []TraceStep) (float64, []TraceStep, error) {
	v, err := resolve(op, nil)
	if err != nil {
		return 0, trace, err
	}
	return v, trace, nil
}

// factorial computes n! iteratively for non-negative integer n up to
// maxFactorial.
func factorial(v float64) (float64, error) {
	if v < 0 || v != math.Trunc(v) {
		return 0, newError(ErrCodeInvalidFactorialArgument, "factorial of %v (needs a non-negative integer)", v)
	}
	if v > maxFactorial {
		return 0, newError(ErrCodeFactorialOverflow, "%v! exceeds float64 range (max %d!)", v, maxFactorial)
	}
	result := 1.0
	for n := 2.0; n <= v; n++ {
		result *= n
	}
	return result, nil
}
