package compiler

import (
	"errors"
	"fmt"
)

// CompileError represents an error detected while turning source text into
// a postfix program. It covers all three stages: normalization, lexing,
// and parsing.
type CompileError struct {
	// Code identifies the error category.
	Code CompileErrorCode

	// Message is a human-readable description.
	Message string

	// Pos is the rune offset in the source text, or -1 when the error has
	// no single position (e.g. unbalanced parentheses found at end of
	// input).
	Pos int
}

// CompileErrorCode categorizes compilation errors.
type CompileErrorCode string

const (
	// ErrCodeEmptyExpression indicates empty or whitespace-only input.
	ErrCodeEmptyExpression CompileErrorCode = "EMPTY_EXPRESSION"

	// ErrCodeUnknownCharacter indicates a character no lexical rule accepts.
	ErrCodeUnknownCharacter CompileErrorCode = "UNKNOWN_CHARACTER"

	// ErrCodeMalformedNumber indicates a numeric literal with more than one
	// decimal point.
	ErrCodeMalformedNumber CompileErrorCode = "MALFORMED_NUMBER"

	// ErrCodeMissingFunctionParen indicates a function name not followed by
	// an opening parenthesis.
	ErrCodeMissingFunctionParen CompileErrorCode = "MISSING_FUNCTION_PAREN"

	// ErrCodeUnbalancedAbsoluteValue indicates absolute-value bars that do
	// not pair up.
	ErrCodeUnbalancedAbsoluteValue CompileErrorCode = "UNBALANCED_ABSOLUTE_VALUE"

	// ErrCodeUnbalancedParentheses indicates parentheses that do not pair up.
	ErrCodeUnbalancedParentheses CompileErrorCode = "UNBALANCED_PARENTHESES"

	// ErrCodeMisplacedComma indicates a comma outside a function-argument
	// context.
	ErrCodeMisplacedComma CompileErrorCode = "MISPLACED_COMMA"
)

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (pos=%d)", e.Code, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode returns true if err is (or wraps) a CompileError with the given
// code.
func HasCode(err error, code CompileErrorCode) bool {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func newError(code CompileErrorCode, pos int, format string, args ...any) *CompileError {
	return &CompileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
