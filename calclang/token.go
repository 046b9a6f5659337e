package calclang

type TokenKind uint8

const (
	TokenAdd TokenKind = iota
	TokenSub
	TokenMul
	TokenDiv
	TokenLeftParen
	TokenRightParen
	TokenLiteral
)

func (k TokenKind) String() string {
	switch k {
	case TokenAdd:
		return "+"
	case TokenSub:
		return "-"
	case TokenMul:
		return "*"
	case TokenDiv:
		return "/"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLiteral:
		return "literal"
	}
	return "invalid"
}

// Token is one lexical unit. Offset is the zero-based byte offset of the
// token's first byte in the source string. Value is set for TokenLiteral
// only.
type Token struct {
	Kind   TokenKind
	Value  float32
	Offset int
}
