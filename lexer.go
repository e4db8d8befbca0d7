// lexer.go
package slate

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Literals & identifiers
	NUMBER  // raw digit-and-dot text; conversion is deferred
	STRING  // decoded literal (no escape sequences exist)
	BOOLEAN // "true" / "false"
	IDENT

	// Keywords
	PRINT

	// Operators & punctuation
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
	SEMICOLON
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LESS
	GREATER
	AND // "and", "&"
	OR  // "or", "|"
	NOT // "not", "!"
)

// Token is a lexical token with its literal payload.
//
// Text holds the payload when applicable: the raw numeric text for
// NUMBER (kept unconverted so the scanner never validates digits), the
// decoded text for STRING, and the name for IDENT. Bool holds the value
// for BOOLEAN. Col is the 0-based start column within the line.
type Token struct {
	Type TokenType
	Text string
	Bool bool
	Col  int
}

// keywords maps reserved words to their token types. Booleans are
// special-cased in scanIdentifier.
var keywords = map[string]TokenType{
	"and":   AND,
	"or":    OR,
	"not":   NOT,
	"print": PRINT,
}

// Lexer is a stateful cursor over one line of source text. It exposes
// the current lookahead token (Token) and Advance; it never re-reads
// earlier text. Every token stream terminates in an EOF sentinel.
type Lexer struct {
	src   string
	pos   int
	start int

	// Token is the current lookahead.
	Token Token
}

// NewLexer creates a lexer for one line of text and scans the first
// token. A malformed first token fails construction.
func NewLexer(src string) (*Lexer, error) {
	l := &Lexer{src: src}
	if err := l.Advance(); err != nil {
		return nil, err
	}
	return l, nil
}

// Advance scans the next token into l.Token. Once EOF is reached the
// lexer stays at EOF.
func (l *Lexer) Advance() error {
	tok, err := l.scanToken()
	if err != nil {
		return err
	}
	l.Token = tok
	return nil
}

func (l *Lexer) isAtEnd() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.pos + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advanceByte() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.pos]
	l.pos++
	return ch, true
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Col: l.start, Msg: msg}
}

func (l *Lexer) mk(tt TokenType) Token {
	return Token{Type: tt, Col: l.start}
}

// ----- scanners -----

// scanNumber consumes an optional leading sign (the caller has already
// checked it is followed by a digit) and then the raw digit-and-dot run.
// There is no exponent syntax and no validation against multiple decimal
// points here: malformed text like "1.2.3" is kept verbatim and fails
// later, at the numeric-parse step.
func (l *Lexer) scanNumber() Token {
	if b, ok := l.peek(); ok && (b == '+' || b == '-') {
		l.advanceByte()
	}
	for {
		b, ok := l.peek()
		if !ok || (!isDigit(b) && b != '.') {
			break
		}
		l.advanceByte()
	}
	return Token{Type: NUMBER, Text: l.src[l.start:l.pos], Col: l.start}
}

// scanIdentifier consumes letters and digits, then classifies the text
// as a reserved word or an identifier.
func (l *Lexer) scanIdentifier() Token {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advanceByte()
	}
	text := l.src[l.start:l.pos]
	switch text {
	case "true":
		return Token{Type: BOOLEAN, Bool: true, Col: l.start}
	case "false":
		return Token{Type: BOOLEAN, Bool: false, Col: l.start}
	}
	if tt, ok := keywords[text]; ok {
		return l.mk(tt)
	}
	return Token{Type: IDENT, Text: text, Col: l.start}
}

// scanString consumes raw characters between double quotes. No escape
// sequences: a backslash is just a character. Reaching end-of-input
// before the closing quote is a fatal lex error.
func (l *Lexer) scanString() (Token, error) {
	l.advanceByte() // opening quote
	for {
		ch, ok := l.advanceByte()
		if !ok {
			return Token{}, l.err("string literal was not terminated")
		}
		if ch == '"' {
			return Token{Type: STRING, Text: l.src[l.start+1 : l.pos-1], Col: l.start}, nil
		}
	}
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.start = l.pos

	if l.isAtEnd() {
		return l.mk(EOF), nil
	}

	ch := l.src[l.pos]

	// A digit, or a sign glued to a digit, begins a numeric literal.
	// This takes priority over the '+'/'-' operator tokens.
	if isDigit(ch) {
		return l.scanNumber(), nil
	}
	if ch == '+' || ch == '-' {
		if b, ok := l.peekN(1); ok && isDigit(b) {
			return l.scanNumber(), nil
		}
	}

	if isAlpha(ch) {
		return l.scanIdentifier(), nil
	}

	if ch == '"' {
		return l.scanString()
	}

	l.advanceByte()
	switch ch {
	case '+':
		return l.mk(PLUS), nil
	case '-':
		return l.mk(MINUS), nil
	case '*':
		return l.mk(STAR), nil
	case '/':
		return l.mk(SLASH), nil
	case '(':
		return l.mk(LPAREN), nil
	case ')':
		return l.mk(RPAREN), nil
	case ';':
		return l.mk(SEMICOLON), nil
	case '&':
		return l.mk(AND), nil
	case '|':
		return l.mk(OR), nil
	case '=':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.mk(EQ), nil
		}
		return l.mk(ASSIGN), nil
	case '!':
		if b, ok := l.peek(); ok && b == '=' {
			l.advanceByte()
			return l.mk(NEQ), nil
		}
		return l.mk(NOT), nil
	case '<':
		return l.mk(LESS), nil
	case '>':
		return l.mk(GREATER), nil
	}

	return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
}
