// parser.go — recursive-descent parser for Slate.
//
// OVERVIEW
// --------
// The parser consumes the pull-based token stream produced by the lexer
// (see lexer.go) and builds one AST root per entry-point call. There is
// no error recovery: the first violated grammar rule aborts the current
// line with a fatal *ParseError and no partial AST is returned. Lexer
// errors surface through the same return path, since the parser is what
// pulls the tokenizer forward.
//
// GRAMMAR (one routine per rule, lowest to highest binding power)
// ---------------------------------------------------------------
//
//	statement      := IDENT '=' expression ';'
//	                | 'print' expression ';'
//	expression     := logicalTerm   { 'or'  logicalTerm }
//	logicalTerm    := logicalFactor { 'and' logicalFactor }
//	logicalFactor  := 'not' logicalFactor | comparison
//	comparison     := relation { ('=='|'!=') expression }
//	relation       := arithmetic { ('<'|'>') arithmetic }
//	arithmetic     := term { ('+'|'-') term }
//	term           := factor { ('*'|'/') factor }
//	factor         := ('+'|'-') factor | primary
//	primary        := NUMBER | STRING | BOOLEAN | IDENT
//	                | '(' expression ')'
//
// Note the comparison rule: the right-hand operand of '=='/'!=' recurses
// into the *top-level* expression rule rather than relation, so a
// comparison swallows any 'and'/'or' terms to its right. This grammar
// shape is load-bearing and kept on purpose; see DESIGN.md before
// "fixing" it.
//
// ParseStatement leaves the tokenizer just past the terminating ';'.
// ParseExpression is the standalone entry used by the driver's fallback
// path: it tolerates one trailing ';' and then requires end-of-input,
// so a line with trailing junk fails instead of being half-evaluated.
package slate

// Parser builds ASTs from a tokenizer. Construct one per line attempt;
// parsing mutates only the tokenizer's cursor.
type Parser struct {
	lex *Lexer
}

// NewParser creates a parser over an already-constructed tokenizer.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseStatement recognizes exactly two statement forms:
// `identifier = expression ;` and `print expression ;`.
func (p *Parser) ParseStatement() (Node, error) {
	switch p.peek().Type {
	case PRINT:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMICOLON, "expected ';' after statement"); err != nil {
			return nil, err
		}
		return &PrintNode{Expr: expr}, nil

	case IDENT:
		name := p.peek().Text
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		if _, err := p.need(ASSIGN, "expected '=' after identifier"); err != nil {
			return nil, err
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMICOLON, "expected ';' after statement"); err != nil {
			return nil, err
		}
		return &AssignNode{Name: name, Expr: expr}, nil
	}

	return nil, p.errHere("statement must begin with 'print' or an identifier")
}

// ParseExpression parses a whole line as a single expression. A
// trailing ';' is tolerated; anything else left over is a parse error.
func (p *Parser) ParseExpression() (Node, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == SEMICOLON {
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
	}
	if p.peek().Type != EOF {
		return nil, p.errHere("unexpected token after expression")
	}
	return expr, nil
}

// ───────────────────────── token basics & helpers ─────────────────────

func (p *Parser) peek() Token { return p.lex.Token }

// match consumes the current token when it is one of tt.
func (p *Parser) match(tt ...TokenType) (Token, bool, error) {
	cur := p.peek()
	for _, t := range tt {
		if cur.Type == t {
			if err := p.lex.Advance(); err != nil {
				return Token{}, false, err
			}
			return cur, true, nil
		}
	}
	return Token{}, false, nil
}

// need consumes the current token when it has type tt, otherwise fails
// with a parse error at the current position.
func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	cur := p.peek()
	if cur.Type != tt {
		return Token{}, p.errHere(msg)
	}
	if err := p.lex.Advance(); err != nil {
		return Token{}, err
	}
	return cur, nil
}

func (p *Parser) errHere(msg string) error {
	return &ParseError{Col: p.peek().Col, Msg: msg}
}

// ───────────────────────── precedence cascade ─────────────────────────

func (p *Parser) expression() (Node, error) {
	left, err := p.logicalTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(OR)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.logicalTerm()
		if err != nil {
			return nil, err
		}
		left = &LogicalNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) logicalTerm() (Node, error) {
	left, err := p.logicalFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(AND)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.logicalFactor()
		if err != nil {
			return nil, err
		}
		left = &LogicalNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) logicalFactor() (Node, error) {
	if _, ok, err := p.match(NOT); err != nil {
		return nil, err
	} else if ok {
		operand, err := p.logicalFactor()
		if err != nil {
			return nil, err
		}
		return &LogicalNode{Op: NOT, Left: operand}, nil
	}
	return p.comparison()
}

func (p *Parser) comparison() (Node, error) {
	left, err := p.relation()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(EQ, NEQ)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		// The right operand recurses into the full expression rule.
		right, err := p.expression()
		if err != nil {
			return nil, err
		}
		left = &CompareNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) relation() (Node, error) {
	left, err := p.arithmetic()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(LESS, GREATER)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.arithmetic()
		if err != nil {
			return nil, err
		}
		left = &CompareNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) arithmetic() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(PLUS, MINUS)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, err := p.match(STAR, SLASH)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: op.Type, Left: left, Right: right}
	}
}

func (p *Parser) factor() (Node, error) {
	if op, ok, err := p.match(PLUS, MINUS); err != nil {
		return nil, err
	} else if ok {
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: op.Type, Operand: operand}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Node, error) {
	cur := p.peek()
	switch cur.Type {
	case NUMBER:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		return &NumberNode{Text: cur.Text}, nil
	case STRING:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		return &StringNode{Text: cur.Text}, nil
	case BOOLEAN:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		return &BooleanNode{Value: cur.Bool}, nil
	case IDENT:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		return &VariableNode{Name: cur.Text}, nil
	case LPAREN:
		if err := p.lex.Advance(); err != nil {
			return nil, err
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case EOF:
		return nil, p.errHere("unexpected end of input")
	}
	return nil, p.errHere("unexpected token")
}
