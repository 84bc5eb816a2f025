package token

import "fmt"

// Token is a sealed interface representing one lexical element.
// Only Number, Operator, Paren, Comma, Prefix, Postfix, and Func
// implement this.
type Token interface {
	token() // Sealed - only these types implement it
}

// Instruction is a Token emitted into postfix order by the compiler.
// The evaluator verifies stack arity at execution time; the compiler only
// guarantees structural validity (balanced parentheses, placed commas).
type Instruction = Token

// Number is a numeric literal or a resolved constant symbol.
type Number float64

func (Number) token() {}

// Operator is one of the binary operator symbols: + - * / ^.
type Operator string

func (Operator) token() {}

// Binary operator symbols.
const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpPow Operator = "^"
)

// Paren is a parenthesis token, '(' or ')'.
type Paren rune

func (Paren) token() {}

// Parenthesis directions.
const (
	ParenOpen  Paren = '('
	ParenClose Paren = ')'
)

// Comma separates arguments of multi-arity function calls.
type Comma struct{}

func (Comma) token() {}

// Prefix is a prefix unary marker. It binds to the operand that follows
// it; chained prefixes apply nearest-first.
type Prefix string

func (Prefix) token() {}

// Prefix unary symbols.
const (
	PrefixRoot   Prefix = "root"   // √x, square root
	PrefixNegate Prefix = "negate" // contextual unary minus
)

// Postfix is a postfix unary marker. It applies to whatever value is on
// the evaluation stack when it executes.
type Postfix string

func (Postfix) token() {}

// Postfix unary symbols.
const (
	PostfixFactorial Postfix = "factorial" // x!
	PostfixPercent   Postfix = "percent"   // x%
)

// Func is a function-call token. It carries the table entry for the named
// function; the tokenizer guarantees the entry is non-nil.
type Func struct {
	Spec *FuncSpec
}

func (Func) token() {}

// String renders a token in its source-level spelling, used by trace
// output and error messages.
func String(t Token) string {
	switch v := t.(type) {
	case Number:
		return fmt.Sprintf("%v", float64(v))
	case Operator:
		return string(v)
	case Paren:
		return string(rune(v))
	case Comma:
		return ","
	case Prefix:
		if v == PrefixRoot {
			return "√"
		}
		return "-"
	case Postfix:
		if v == PostfixFactorial {
			return "!"
		}
		return "%"
	case Func:
		return v.Spec.Name
	default:
		return fmt.Sprintf("<%T>", t)
	}
}
