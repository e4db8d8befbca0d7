// errors.go: error kinds and caret-snippet rendering
//
// Three error kinds exist, one per pipeline stage:
//
//   - *LexError   — unexpected character, unterminated string literal.
//   - *ParseError — unexpected or missing token, missing ';', bad form.
//   - *EvalError  — undefined variable, type mismatch, bad coercion.
//
// All three are fatal to the current line only and propagate by
// ordinary return values (never panics), so the driver can branch on
// kind to implement its statement→expression fallback.
//
// WrapErrorWithSource augments lex/parse errors with a caret snippet
// pointing at the offending column of the line:
//
//	PARSE ERROR at col 3: expected ';' after statement
//
//	  | x = 1
//	  |   ^
//
// Eval errors carry no position (the AST is position-free) and are
// returned unchanged; so is any foreign error.
package slate

import (
	"fmt"
	"strings"
)

// LexError is a fatal tokenizer error. Col is 0-based.
type LexError struct {
	Col int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEX ERROR at col %d: %s", e.Col+1, e.Msg)
}

// ParseError is a fatal parser error. Col is 0-based and points at the
// start of the offending token (or just past the input at end-of-input).
type ParseError struct {
	Col int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at col %d: %s", e.Col+1, e.Msg)
}

// EvalError is a fatal evaluation error.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "EVAL ERROR: " + e.Msg
}

// WrapErrorWithSource returns an error whose message includes a caret
// snippet of the source line for lex/parse errors. Other errors are
// returned unchanged. Columns out of range are clamped so rendering
// never fails.
func WrapErrorWithSource(err error, line string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(e.Error(), line, e.Col))
	case *ParseError:
		return fmt.Errorf("%s", caretSnippet(e.Error(), line, e.Col))
	default:
		return err
	}
}

func caretSnippet(header, line string, col int) string {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	fmt.Fprintf(&b, "  | %s\n", line)
	fmt.Fprintf(&b, "  | %s^\n", strings.Repeat(" ", col))
	return b.String()
}
