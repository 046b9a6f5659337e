package calclang

// Parser builds a syntax tree from a token sequence by recursive descent.
//
// Term    := Factor (('+' | '-') Factor)*
// Factor  := Primary (('*' | '/') Primary)*
// Primary := LITERAL | '(' Term ')'
type Parser struct {
	source string
	tokens []Token
	pos    int
}

func NewParser(source string, tokens []Token) *Parser {
	return &Parser{
		source: source,
		tokens: tokens,
	}
}

// Parse consumes the whole token sequence. Parsing is all or nothing: on any
// failure no partial tree is returned, and tokens left over after a complete
// Term are a failure too.
func (p *Parser) Parse() (*Node, *Diagnostic) {
	n, diag := p.term()
	if diag != nil {
		return nil, diag
	}
	if tok, ok := p.current(); ok {
		return nil, p.unexpected(tok)
	}
	return n, nil
}

func (p *Parser) current() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// term folds left: 1-2-3 parses as (1-2)-3.
func (p *Parser) term() (*Node, *Diagnostic) {
	n, diag := p.factor()
	if diag != nil {
		return nil, diag
	}
	for {
		tok, ok := p.current()
		if !ok {
			return n, nil
		}
		var kind NodeKind
		switch tok.Kind {
		case TokenAdd:
			kind = NodeAdd
		case TokenSub:
			kind = NodeSub
		default:
			return n, nil
		}
		p.pos++
		rhs, diag := p.factor()
		if diag != nil {
			return nil, diag
		}
		n = &Node{Kind: kind, Left: n, Right: rhs}
	}
}

func (p *Parser) factor() (*Node, *Diagnostic) {
	n, diag := p.primary()
	if diag != nil {
		return nil, diag
	}
	for {
		tok, ok := p.current()
		if !ok {
			return n, nil
		}
		var kind NodeKind
		switch tok.Kind {
		case TokenMul:
			kind = NodeMul
		case TokenDiv:
			kind = NodeDiv
		default:
			return n, nil
		}
		p.pos++
		rhs, diag := p.primary()
		if diag != nil {
			return nil, diag
		}
		n = &Node{Kind: kind, Left: n, Right: rhs}
	}
}

func (p *Parser) primary() (*Node, *Diagnostic) {
	tok, ok := p.current()
	if !ok {
		return nil, p.endOfStream()
	}
	switch tok.Kind {
	case TokenLiteral:
		p.pos++
		return &Node{Kind: NodeLiteral, Value: tok.Value}, nil
	case TokenLeftParen:
		p.pos++
		n, diag := p.term()
		if diag != nil {
			return nil, diag
		}
		end, ok := p.current()
		if !ok {
			return nil, p.endOfStream()
		}
		if end.Kind != TokenRightParen {
			return nil, p.unexpected(end)
		}
		p.pos++
		return n, nil
	}
	return nil, p.unexpected(tok)
}

func (p *Parser) unexpected(tok Token) *Diagnostic {
	return &Diagnostic{
		Kind:   UnexpectedToken,
		Offset: tok.Offset,
		Source: p.source,
	}
}

func (p *Parser) endOfStream() *Diagnostic {
	return &Diagnostic{
		Kind:   EndOfStream,
		Offset: len(p.source),
		Source: p.source,
	}
}
