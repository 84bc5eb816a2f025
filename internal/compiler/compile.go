package compiler

import (
	"github.com/roach88/reckon/internal/token"
)

// Compile converts a token sequence into a postfix instruction sequence
// using the shunting-yard algorithm, extended for function calls and
// prefix/postfix unary operators:
//
//   - numbers go straight to output; any prefix unaries atop the stack are
//     then flushed, so a chain like √-x applies negate first, root second;
//   - function names and prefix unaries are pushed and never compared by
//     precedence, deferring until their operand is complete;
//   - postfix unaries go straight to output;
//   - a closing parenthesis drains to its opening marker, then flushes any
//     function or prefix unary it exposes, so sin(x) closes the call as
//     soon as its argument group closes;
//   - a comma drains to the nearest opening parenthesis without consuming
//     it, separating function arguments.
//
// The compiler validates parenthesization and comma placement only; stack
// arity is verified by the evaluator at execution time.
func Compile(tokens []token.Token) ([]token.Instruction, error) {
	var (
		output []token.Instruction
		stack  []token.Token
	)

	push := func(t token.Token) { stack = append(stack, t) }
	pop := func() token.Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}
	peek := func() (token.Token, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		return stack[len(stack)-1], true
	}

	// flushPrefixes moves prefix unaries from the stack top to output.
	// Called when a complete operand has just been emitted.
	flushPrefixes := func() {
		for {
			top, ok := peek()
			if !ok {
				return
			}
			if _, isPrefix := top.(token.Prefix); !isPrefix {
				return
			}
			output = append(output, pop())
		}
	}

	for _, t := range tokens {
		switch tk := t.(type) {
		case token.Number:
			output = append(output, tk)
			flushPrefixes()

		case token.Func, token.Prefix:
			push(tk)

		case token.Postfix:
			output = append(output, tk)

		case token.Operator:
			incoming := token.Operators[tk]
			for {
				top, ok := peek()
				if !ok {
					break
				}
				switch top := top.(type) {
				case token.Func, token.Prefix:
					output = append(output, pop())
					continue
				case token.Operator:
					onStack := token.Operators[top]
					if onStack.Precedence > incoming.Precedence ||
						(onStack.Precedence == incoming.Precedence && !incoming.RightAssoc) {
						output = append(output, pop())
						continue
					}
				}
				break
			}
			push(tk)

		case token.Paren:
			if tk == token.ParenOpen {
				push(tk)
				break
			}
			if err := drainToParen(&output, &stack, true); err != nil {
				return nil, err
			}
			// The group just closed is a complete operand: close any
			// function call or prefix chain waiting on it.
			for {
				top, ok := peek()
				if !ok {
					break
				}
				switch top.(type) {
				case token.Func, token.Prefix:
					output = append(output, pop())
					continue
				}
				break
			}

		case token.Comma:
			if err := drainToParen(&output, &stack, false); err != nil {
				return nil, newError(ErrCodeMisplacedComma, -1, "comma outside a function argument list")
			}

		default:
			// Unreachable: the tokenizer emits no other variants.
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, isParen := top.(token.Paren); isParen {
			return nil, newError(ErrCodeUnbalancedParentheses, -1, "opening parenthesis is never closed")
		}
		output = append(output, top)
	}
	return output, nil
}

// drainToParen pops stack entries to output until an opening parenthesis
// is found. When consume is true the parenthesis is removed (closing a
// group); otherwise it is left in place (argument separator).
func drainToParen(output *[]token.Instruction, stack *[]token.Token, consume bool) error {
	for len(*stack) > 0 {
		top := (*stack)[len(*stack)-1]
		if p, isParen := top.(token.Paren); isParen && p == token.ParenOpen {
			if consume {
				*stack = (*stack)[:len(*stack)-1]
			}
			return nil
		}
		*stack = (*stack)[:len(*stack)-1]
		*output = append(*output, top)
	}
	return newError(ErrCodeUnbalancedParentheses, -1, "closing parenthesis without a matching open")
}
