package lang

import (
	"strconv"
	"strings"
)

// accepter decides how the token in progress continues given its next
// character r (ok is false at end of input) and the text accepted so far.
//
// It returns done=true when r is not part of the token; tok is then the
// finished token, or nil if the text forms no token. Otherwise r is
// consumed, and a non-nil next replaces the accepter for the rest of the
// token.
type accepter func(r rune, ok bool, text string) (next accepter, tok Token, done bool)

// Tokenize splits input into positioned tokens.
//
// Tokenize is total. Characters that cannot begin a token, including
// whitespace, are skipped. Positions are rune indices into input.
func Tokenize(input string) []Token {
	var (
		src    = []rune(input)
		tokens = make([]Token, 0, len(src)/2+1)
		start  = 0
		accept accepter
	)

	emit := func(tok Token, end int) {
		if tok != nil {
			tokens = append(tokens, withPosition(tok, Span(start, end)))
		}

		accept = nil
	}

	for i := 0; i < len(src); i++ {
		r := src[i]

		if accept == nil {
			start = i

			if op, ok := operatorOf(r); ok {
				emit(OperatorToken{Operator: op}, i)

				continue
			}

			switch {
			case r == '.':
				// The token's one '.' is taken.
				accept = acceptInteger
			case isDigit(r):
				accept = acceptDecimal
			case isLetter(r):
				accept = acceptName
			}

			continue
		}

		next, tok, done := accept(r, true, string(src[start:i]))
		if done {
			emit(tok, i-1)
			// r begins the next token.
			i--

			continue
		}

		if next != nil {
			accept = next
		}
	}

	if accept != nil {
		_, tok, _ := accept(0, false, string(src[start:]))
		emit(tok, len(src)-1)
	}

	return tokens
}

func acceptInteger(r rune, ok bool, text string) (accepter, Token, bool) {
	if ok && isDigit(r) {
		return nil, nil, false
	}

	return nil, literal(text), true
}

// acceptDecimal is acceptInteger that also takes a single '.'.
func acceptDecimal(r rune, ok bool, text string) (accepter, Token, bool) {
	if ok && r == '.' {
		return acceptInteger, nil, false
	}

	return acceptInteger(r, ok, text)
}

func acceptName(r rune, ok bool, text string) (accepter, Token, bool) {
	if ok && (isLetter(r) || isDigit(r)) {
		return nil, nil, false
	}

	return nil, NameToken{Name: text}, true
}

// literal converts numeric text to a LiteralToken. Text containing '.' is
// [Real], otherwise [Integer]; integers beyond int64 widen to Real. A lone
// "." is no number and yields nil.
func literal(text string) Token {
	if !strings.ContainsRune(text, '.') {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return LiteralToken{Value: Integer(n)}
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}

	return LiteralToken{Value: Real(f)}
}

func withPosition(tok Token, pos Position) Token {
	switch t := tok.(type) {
	case OperatorToken:
		t.Position = pos

		return t
	case LiteralToken:
		t.Position = pos

		return t
	case NameToken:
		t.Position = pos

		return t
	default:
		return tok
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }
