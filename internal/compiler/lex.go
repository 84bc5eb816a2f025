package compiler

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/roach88/reckon/internal/token"
)

// Tokenize converts normalized source text into an ordered token sequence.
//
// Scanning is one code point at a time with two refinements:
//   - names (functions and constants) are matched longest-first before
//     number/operator scanning, so a function name is never split into a
//     constant plus residual letters;
//   - '-' is classified by context: a prefix negation when it starts the
//     input or immediately follows an operator, an opening parenthesis, a
//     prefix unary, a function name, or a comma; a binary operator
//     otherwise.
//
// The two-character sequence ** is accepted as a synonym for ^.
func Tokenize(text string) ([]token.Token, error) {
	lx := &lexer{src: []rune(text)}
	return lx.run()
}

type lexer struct {
	src    []rune
	pos    int
	tokens []token.Token
}

func (lx *lexer) run() ([]token.Token, error) {
	for lx.pos < len(lx.src) {
		r := lx.src[lx.pos]
		switch {
		case unicode.IsSpace(r):
			lx.pos++
		case unicode.IsDigit(r) || (r == '.' && lx.digitAt(lx.pos+1)):
			if err := lx.scanNumber(); err != nil {
				return nil, err
			}
		case unicode.IsLetter(r):
			if err := lx.scanName(); err != nil {
				return nil, err
			}
		case r == '√':
			lx.emit(token.PrefixRoot)
			lx.pos++
		case r == '*':
			// ** is a synonym for ^.
			if lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '*' {
				lx.emit(token.OpPow)
				lx.pos += 2
			} else {
				lx.emit(token.OpMul)
				lx.pos++
			}
		case r == '+':
			lx.emit(token.OpAdd)
			lx.pos++
		case r == '/':
			lx.emit(token.OpDiv)
			lx.pos++
		case r == '^':
			lx.emit(token.OpPow)
			lx.pos++
		case r == '-':
			if lx.minusIsPrefix() {
				lx.emit(token.PrefixNegate)
			} else {
				lx.emit(token.OpSub)
			}
			lx.pos++
		case r == '(':
			lx.emit(token.ParenOpen)
			lx.pos++
		case r == ')':
			lx.emit(token.ParenClose)
			lx.pos++
		case r == ',':
			lx.emit(token.Comma{})
			lx.pos++
		case r == '!':
			lx.emit(token.PostfixFactorial)
			lx.pos++
		case r == '%':
			lx.emit(token.PostfixPercent)
			lx.pos++
		default:
			return nil, newError(ErrCodeUnknownCharacter, lx.pos, "unrecognized character %q", r)
		}
	}
	return lx.tokens, nil
}

func (lx *lexer) emit(t token.Token) {
	lx.tokens = append(lx.tokens, t)
}

func (lx *lexer) digitAt(i int) bool {
	return i < len(lx.src) && unicode.IsDigit(lx.src[i])
}

// scanNumber accepts digits with at most one decimal point. A second
// point inside the same literal is a malformed number, not the start of a
// new one.
func (lx *lexer) scanNumber() error {
	start := lx.pos
	seenPoint := false
	for lx.pos < len(lx.src) {
		r := lx.src[lx.pos]
		if unicode.IsDigit(r) {
			lx.pos++
			continue
		}
		if r == '.' {
			if seenPoint {
				return newError(ErrCodeMalformedNumber, lx.pos, "number has more than one decimal point")
			}
			seenPoint = true
			lx.pos++
			continue
		}
		break
	}
	text := string(lx.src[start:lx.pos])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return newError(ErrCodeMalformedNumber, start, "invalid number %q", text)
	}
	lx.emit(token.Number(value))
	return nil
}

// scanName matches the longest function name or constant symbol at the
// current position. Function names win ties so that a name like "pi"
// could coexist with a longer function starting with the same letters.
func (lx *lexer) scanName() error {
	rest := string(lx.src[lx.pos:])

	for _, name := range token.FunctionNames() {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		nameStart := lx.pos
		lx.pos += len([]rune(name))
		// A function name must be followed by '(' after optional spaces.
		j := lx.pos
		for j < len(lx.src) && unicode.IsSpace(lx.src[j]) {
			j++
		}
		if j >= len(lx.src) || lx.src[j] != '(' {
			return newError(ErrCodeMissingFunctionParen, nameStart, "function %q must be followed by '('", name)
		}
		lx.emit(token.Func{Spec: token.Functions[name]})
		return nil
	}

	for _, sym := range token.ConstantSymbols() {
		if strings.HasPrefix(rest, sym) {
			lx.emit(token.Number(token.Constants[sym]))
			lx.pos += len([]rune(sym))
			return nil
		}
	}

	return newError(ErrCodeUnknownCharacter, lx.pos, "unrecognized character %q", lx.src[lx.pos])
}

// minusIsPrefix reports whether a '-' at the current position is a prefix
// negation rather than a binary operator, based on the previous token.
func (lx *lexer) minusIsPrefix() bool {
	if len(lx.tokens) == 0 {
		return true
	}
	switch prev := lx.tokens[len(lx.tokens)-1].(type) {
	case token.Operator, token.Prefix, token.Func, token.Comma:
		return true
	case token.Paren:
		return prev == token.ParenOpen
	default:
		return false
	}
}
