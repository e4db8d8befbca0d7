// session.go
//
// The line driver. A Session owns one variable store for its whole
// lifetime and feeds it source lines, one at a time:
//
//   - blank lines are ignored;
//   - lines starting (after whitespace) with "//" are comments: the
//     marker is stripped and the text is echoed as "Comment: ..."
//     without ever reaching the tokenizer;
//   - every other line is parsed as a statement and evaluated; if that
//     fails at any stage, the same line is retried from a fresh
//     tokenizer as a bare expression, and the result is printed.
//
// A Print statement already writes its output during evaluation (the
// single output point, see ast.go); the session never re-prints a
// statement's result. Only expression-fallback results are printed
// here, REPL-style via FormatValue.
//
// A failed line reports exactly one error and leaves the store's
// contents from earlier lines intact.
package slate

import (
	"fmt"
	"io"
	"strings"
)

// Version is the interpreter version reported by the cmd driver.
const Version = "0.3.1"

// Session is one interpreter session: a variable store plus an output
// writer, fed lines until discarded.
type Session struct {
	env *Env
	out io.Writer
}

// NewSession creates a session writing to out. The store lives as long
// as the session; all lines share it.
func NewSession(out io.Writer) *Session {
	env := NewEnv()
	env.Out = out
	return &Session{env: env, out: out}
}

// Env exposes the session's variable store (tests inspect it).
func (s *Session) Env() *Env { return s.env }

// EvalLine processes one source line. It returns the error that should
// be reported for the line, or nil when the line was handled.
func (s *Session) EvalLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "//"); ok {
		fmt.Fprintln(s.out, "Comment:"+rest)
		return nil
	}

	// First attempt: statement.
	stmtErr := func() error {
		lex, err := NewLexer(line)
		if err != nil {
			return err
		}
		stmt, err := NewParser(lex).ParseStatement()
		if err != nil {
			return err
		}
		_, err = stmt.Evaluate(s.env)
		return err
	}()
	if stmtErr == nil {
		return nil
	}

	// Fallback: retry the whole line from scratch as an expression.
	exprErr := func() error {
		lex, err := NewLexer(line)
		if err != nil {
			return err
		}
		expr, err := NewParser(lex).ParseExpression()
		if err != nil {
			return err
		}
		v, err := expr.Evaluate(s.env)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, FormatValue(v))
		return nil
	}()
	if exprErr == nil {
		return nil
	}

	// Both attempts failed: report the statement attempt's error. It is
	// the meaningful one — `print y;` reports the undefined variable and
	// `print "abc;` the lex error, not the fallback's complaint that
	// 'print' cannot start an expression.
	return stmtErr
}
