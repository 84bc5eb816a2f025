package compiler

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// barOpeners are the characters after which a '|' opens a new
// absolute-value group rather than closing one.
const barOpeners = "+-*/^(,√"

// Normalize prepares raw source text for tokenization.
//
// The text is first brought to Unicode NFC so that decomposed input (as
// produced by some input methods) compares equal to its composed form.
// Absolute-value bar pairs are then rewritten into abs(...) calls.
//
// Bars carry no intrinsic direction: a '|' opens a group when it appears
// at the start of the text or immediately after an operator, an opening
// parenthesis, a comma, or a root symbol; any other '|' closes the
// innermost open group. The direction is inferred purely from the
// immediately preceding non-space character.
//
// Fails with ErrCodeEmptyExpression on empty or whitespace-only input and
// ErrCodeUnbalancedAbsoluteValue when bars do not pair up.
func Normalize(text string) (string, error) {
	text = norm.NFC.String(text)
	if strings.TrimSpace(text) == "" {
		return "", newError(ErrCodeEmptyExpression, -1, "expression is empty")
	}

	var out strings.Builder
	out.Grow(len(text))

	open := 0
	prev := rune(0) // last non-space rune seen, 0 at start of text
	for i, r := range text {
		if r != '|' {
			out.WriteRune(r)
			if !unicode.IsSpace(r) {
				prev = r
			}
			continue
		}
		if prev == 0 || strings.ContainsRune(barOpeners, prev) {
			out.WriteString("abs(")
			open++
		} else {
			if open == 0 {
				return "", newError(ErrCodeUnbalancedAbsoluteValue, i, "closing '|' without a matching opening bar")
			}
			out.WriteRune(')')
			open--
		}
		prev = r
	}
	if open > 0 {
		return "", newError(ErrCodeUnbalancedAbsoluteValue, -1, "%d absolute-value group(s) left open", open)
	}
	return out.String(), nil
}
