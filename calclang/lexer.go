package calclang

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer scans an immutable source string into an ordered token sequence.
type Lexer struct {
	source string
	cursor int
	tokens []Token
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
	}
}

// Scan produces the whole token sequence, or stops at the first byte that
// cannot start any token. There is no recovery: a failed scan yields no
// tokens.
func (l *Lexer) Scan() ([]Token, *Diagnostic) {
	for l.cursor < len(l.source) {
		if l.skipWhitespace() {
			continue
		}

		start := l.cursor
		switch l.source[l.cursor] {
		case '+':
			l.emit(TokenAdd, start)
		case '-':
			l.emit(TokenSub, start)
		case '*':
			l.emit(TokenMul, start)
		case '/':
			l.emit(TokenDiv, start)
		case '(':
			l.emit(TokenLeftParen, start)
		case ')':
			l.emit(TokenRightParen, start)
		default:
			if !isDigit(l.source[l.cursor]) {
				// a leading '.' lands here too: ".234" is an error,
				// not a number
				return nil, &Diagnostic{
					Kind:   InvalidCharacter,
					Offset: l.cursor,
					Source: l.source,
				}
			}
			l.scanLiteral(start)
		}
	}
	return l.tokens, nil
}

func (l *Lexer) emit(kind TokenKind, offset int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Offset: offset})
	l.cursor++
}

// skipWhitespace consumes one whitespace rune, reporting whether it did.
func (l *Lexer) skipWhitespace() bool {
	r, sz := utf8.DecodeRuneInString(l.source[l.cursor:])
	if sz > 0 && unicode.IsSpace(r) {
		l.cursor += sz
		return true
	}
	return false
}

// scanLiteral consumes DIGIT+ ('.' DIGIT*)?. A second '.' simply ends the
// literal; the dot is left for the next scan step, where it fails as an
// invalid character. "23.23.3" lexes 23.23 and then fails at the second dot.
func (l *Lexer) scanLiteral(start int) {
	hasDecimalPoint := false
	for l.cursor < len(l.source) {
		ch := l.source[l.cursor]
		if isDigit(ch) {
			l.cursor++
			continue
		}
		if ch == '.' && !hasDecimalPoint {
			hasDecimalPoint = true
			l.cursor++
			continue
		}
		break
	}

	// The text is digits with at most one dot, so the only possible parse
	// failure is out of range, which still yields the right infinity.
	value, _ := strconv.ParseFloat(l.source[start:l.cursor], 32)
	l.tokens = append(l.tokens, Token{
		Kind:   TokenLiteral,
		Value:  float32(value),
		Offset: start,
	})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
