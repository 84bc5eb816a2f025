package token

import (
	"fmt"
	"math"
	"sort"
)

// OpSpec describes one binary operator: its precedence, associativity, and
// arithmetic. Division-by-zero is guarded by the evaluator, not here, so
// Apply is total over its inputs.
type OpSpec struct {
	Precedence int
	RightAssoc bool
	Apply      func(left, right float64) float64
}

// Operators is the binary operator table. Precedence: + - below * / below ^.
// Only ^ is right-associative.
var Operators = map[Operator]OpSpec{
	OpAdd: {Precedence: 1, Apply: func(a, b float64) float64 { return a + b }},
	OpSub: {Precedence: 1, Apply: func(a, b float64) float64 { return a - b }},
	OpMul: {Precedence: 2, Apply: func(a, b float64) float64 { return a * b }},
	OpDiv: {Precedence: 2, Apply: func(a, b float64) float64 { return a / b }},
	OpPow: {Precedence: 3, RightAssoc: true, Apply: math.Pow},
}

// DomainError reports a function argument outside the function's domain.
// The evaluator surfaces it as a domain-violation evaluation error.
type DomainError struct {
	Fn     string
	Arg    float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: argument %v %s", e.Fn, e.Arg, e.Reason)
}

// FuncSpec describes one named function: fixed arity plus an evaluation
// rule with its own domain guards.
type FuncSpec struct {
	Name  string
	Arity int
	Apply func(args []float64) (float64, error)
}

// Functions is the function table. Names are matched longest-first by the
// tokenizer so that, e.g., "asin" is never read as a shorter name plus
// residual letters.
var Functions = map[string]*FuncSpec{
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"tan":  unary("tan", math.Tan),
	"atan": unary("atan", math.Atan),
	"abs":  unary("abs", math.Abs),
	"asin": {
		Name:  "asin",
		Arity: 1,
		Apply: func(args []float64) (float64, error) {
			if args[0] < -1 || args[0] > 1 {
				return 0, &DomainError{Fn: "asin", Arg: args[0], Reason: "outside [-1, 1]"}
			}
			return math.Asin(args[0]), nil
		},
	},
	"acos": {
		Name:  "acos",
		Arity: 1,
		Apply: func(args []float64) (float64, error) {
			if args[0] < -1 || args[0] > 1 {
				return 0, &DomainError{Fn: "acos", Arg: args[0], Reason: "outside [-1, 1]"}
			}
			return math.Acos(args[0]), nil
		},
	},
	"ln": {
		Name:  "ln",
		Arity: 1,
		Apply: func(args []float64) (float64, error) {
			if args[0] <= 0 {
				return 0, &DomainError{Fn: "ln", Arg: args[0], Reason: "must be positive"}
			}
			return math.Log(args[0]), nil
		},
	},
	// log(base, value) = log of value in the given base.
	"log": {
		Name:  "log",
		Arity: 2,
		Apply: func(args []float64) (float64, error) {
			base, value := args[0], args[1]
			if base <= 0 {
				return 0, &DomainError{Fn: "log", Arg: base, Reason: "base must be positive"}
			}
			if base == 1 {
				return 0, &DomainError{Fn: "log", Arg: base, Reason: "base must not be 1"}
			}
			if value <= 0 {
				return 0, &DomainError{Fn: "log", Arg: value, Reason: "must be positive"}
			}
			return math.Log(value) / math.Log(base), nil
		},
	},
	"sqrt": {
		Name:  "sqrt",
		Arity: 1,
		Apply: func(args []float64) (float64, error) {
			if args[0] < 0 {
				return 0, &DomainError{Fn: "sqrt", Arg: args[0], Reason: "must not be negative"}
			}
			return math.Sqrt(args[0]), nil
		},
	},
	"min": binary("min", math.Min),
	"max": binary("max", math.Max),
	"pow": binary("pow", math.Pow),
}

func unary(name string, fn func(float64) float64) *FuncSpec {
	return &FuncSpec{
		Name:  name,
		Arity: 1,
		Apply: func(args []float64) (float64, error) { return fn(args[0]), nil },
	}
}

func binary(name string, fn func(float64, float64) float64) *FuncSpec {
	return &FuncSpec{
		Name:  name,
		Arity: 2,
		Apply: func(args []float64) (float64, error) { return fn(args[0], args[1]), nil },
	}
}

// Constants is the named constant table. Symbols may be multi-character;
// lookup through ConstantSymbols is longest-first to avoid prefix
// collisions.
var Constants = map[string]float64{
	"pi":  math.Pi,
	"tau": 2 * math.Pi,
	"e":   math.E,
	"phi": math.Phi,
}

var (
	functionNames   []string
	constantSymbols []string
)

func init() {
	functionNames = sortedByLength(Functions)
	constantSymbols = sortedByLengthF(Constants)
}

// FunctionNames returns the function names ordered longest-first (ties
// broken alphabetically). The returned slice must not be modified.
func FunctionNames() []string { return functionNames }

// ConstantSymbols returns the constant symbols ordered longest-first (ties
// broken alphabetically). The returned slice must not be modified.
func ConstantSymbols() []string { return constantSymbols }

func sortedByLength(m map[string]*FuncSpec) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sortLongestFirst(names)
	return names
}

func sortedByLengthF(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sortLongestFirst(names)
	return names
}

func sortLongestFirst(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
}
