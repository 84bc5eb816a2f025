package engine

import (
	"errors"
	"fmt"
)

// EvalError represents an error detected during postfix execution.
//
// Evaluation errors include structural failures (instruction sequence
// cannot be satisfied by the stack) and domain failures (an operation
// applied outside its mathematical domain).
type EvalError struct {
	// Code identifies the error category.
	Code EvalErrorCode

	// Message is a human-readable description.
	Message string
}

// EvalErrorCode categorizes evaluation errors.
type EvalErrorCode string

const (
	// ErrCodeInsufficientOperands indicates an instruction needing more
	// operands than the stack holds.
	ErrCodeInsufficientOperands EvalErrorCode = "INSUFFICIENT_OPERANDS"

	// ErrCodeMalformedExpression indicates the stack did not reduce to
	// exactly one value at end of execution.
	ErrCodeMalformedExpression EvalErrorCode = "MALFORMED_EXPRESSION"

	// ErrCodeDivisionByZero indicates division with a zero divisor.
	ErrCodeDivisionByZero EvalErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeNegativeRoot indicates the root operator applied to a
	// negative value.
	ErrCodeNegativeRoot EvalErrorCode = "NEGATIVE_ROOT"

	// ErrCodeDomainViolation indicates a function argument outside the
	// function's domain.
	ErrCodeDomainViolation EvalErrorCode = "DOMAIN_VIOLATION"

	// ErrCodeInvalidFactorialArgument indicates factorial of a negative or
	// non-integer value.
	ErrCodeInvalidFactorialArgument EvalErrorCode = "INVALID_FACTORIAL_ARGUMENT"

	// ErrCodeFactorialOverflow indicates a factorial argument above 170,
	// the largest whose factorial is representable as a float64.
	ErrCodeFactorialOverflow EvalErrorCode = "FACTORIAL_OVERFLOW"

	// ErrCodePercentRequiresLeft indicates a percent marker consumed by
	// + or - with no preceding left value to take a percentage of.
	ErrCodePercentRequiresLeft EvalErrorCode = "PERCENT_REQUIRES_LEFT_OPERAND"
)

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode returns true if err is (or wraps) an EvalError with the given
// code.
func HasCode(err error, code EvalErrorCode) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}

func newError(code EvalErrorCode, format string, args ...any) *EvalError {
	return &EvalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
