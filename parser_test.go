// parser_test.go
package slate

import (
	"errors"
	"reflect"
	"testing"
)

func parseExpr(t *testing.T, src string) Node {
	t.Helper()
	lex, err := NewLexer(src)
	if err != nil {
		t.Fatalf("NewLexer error: %v", err)
	}
	n, err := NewParser(lex).ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression(%q) error: %v", src, err)
	}
	return n
}

func parseStmt(t *testing.T, src string) Node {
	t.Helper()
	lex, err := NewLexer(src)
	if err != nil {
		t.Fatalf("NewLexer error: %v", err)
	}
	n, err := NewParser(lex).ParseStatement()
	if err != nil {
		t.Fatalf("ParseStatement(%q) error: %v", src, err)
	}
	return n
}

func stmtErr(t *testing.T, src string) error {
	t.Helper()
	lex, err := NewLexer(src)
	if err != nil {
		return err
	}
	_, err = NewParser(lex).ParseStatement()
	if err == nil {
		t.Fatalf("ParseStatement(%q): expected an error", src)
	}
	return err
}

func Test_Parser_Precedence_MulBeforeAdd(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3).
	n := parseExpr(t, `1 + 2 * 3`)
	add, ok := n.(*BinaryNode)
	if !ok || add.Op != PLUS {
		t.Fatalf("root: want '+' BinaryNode, got %#v", n)
	}
	mul, ok := add.Right.(*BinaryNode)
	if !ok || mul.Op != STAR {
		t.Fatalf("right of '+': want '*' BinaryNode, got %#v", add.Right)
	}
}

func Test_Parser_Parentheses_Group(t *testing.T) {
	n := parseExpr(t, `(1 + 2) * 3`)
	mul, ok := n.(*BinaryNode)
	if !ok || mul.Op != STAR {
		t.Fatalf("root: want '*' BinaryNode, got %#v", n)
	}
	if _, ok := mul.Left.(*BinaryNode); !ok {
		t.Fatalf("left of '*': want grouped '+' BinaryNode, got %#v", mul.Left)
	}
}

func Test_Parser_LeftAssociativity(t *testing.T) {
	// 10 - 2 - 3 must parse as (10 - 2) - 3.
	n := parseExpr(t, `10 - 2 - 3`)
	outer, ok := n.(*BinaryNode)
	if !ok || outer.Op != MINUS {
		t.Fatalf("root: want '-' BinaryNode, got %#v", n)
	}
	if _, ok := outer.Left.(*BinaryNode); !ok {
		t.Fatalf("left: want nested '-' BinaryNode, got %#v", outer.Left)
	}
	if _, ok := outer.Right.(*NumberNode); !ok {
		t.Fatalf("right: want NumberNode, got %#v", outer.Right)
	}
}

func Test_Parser_ComparisonRightSide_RecursesIntoExpression(t *testing.T) {
	// The right operand of '==' swallows the rest of the expression, so
	// `a == b and c` parses as a == (b and c), not (a == b) and c.
	n := parseExpr(t, `a == b and c`)
	cmp, ok := n.(*CompareNode)
	if !ok || cmp.Op != EQ {
		t.Fatalf("root: want '==' CompareNode, got %#v", n)
	}
	if _, ok := cmp.Right.(*LogicalNode); !ok {
		t.Fatalf("right of '==': want 'and' LogicalNode, got %#v", cmp.Right)
	}
}

func Test_Parser_RelationChain_IsLeftAssociative(t *testing.T) {
	n := parseExpr(t, `a < b > c`)
	outer, ok := n.(*CompareNode)
	if !ok || outer.Op != GREATER {
		t.Fatalf("root: want '>' CompareNode, got %#v", n)
	}
	if inner, ok := outer.Left.(*CompareNode); !ok || inner.Op != LESS {
		t.Fatalf("left: want '<' CompareNode, got %#v", outer.Left)
	}
}

func Test_Parser_NotBindsTighterThanAnd(t *testing.T) {
	n := parseExpr(t, `not a and b`)
	and, ok := n.(*LogicalNode)
	if !ok || and.Op != AND {
		t.Fatalf("root: want 'and' LogicalNode, got %#v", n)
	}
	if neg, ok := and.Left.(*LogicalNode); !ok || neg.Op != NOT {
		t.Fatalf("left of 'and': want 'not' LogicalNode, got %#v", and.Left)
	}
}

func Test_Parser_UnaryFactor(t *testing.T) {
	n := parseExpr(t, `-(1 + 2)`)
	neg, ok := n.(*UnaryNode)
	if !ok || neg.Op != MINUS {
		t.Fatalf("root: want '-' UnaryNode, got %#v", n)
	}
}

func Test_Parser_Statement_Assignment(t *testing.T) {
	n := parseStmt(t, `x = 5;`)
	asg, ok := n.(*AssignNode)
	if !ok || asg.Name != "x" {
		t.Fatalf("want AssignNode{x}, got %#v", n)
	}
}

func Test_Parser_Statement_Print(t *testing.T) {
	n := parseStmt(t, `print "a" + "b";`)
	if _, ok := n.(*PrintNode); !ok {
		t.Fatalf("want PrintNode, got %#v", n)
	}
}

func Test_Parser_Statement_MissingAssign_IsParseError(t *testing.T) {
	err := stmtErr(t, `x 5;`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
}

func Test_Parser_Statement_MissingSemicolon_IsParseError(t *testing.T) {
	err := stmtErr(t, `x = 5`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
}

func Test_Parser_Statement_BadLeadingToken_IsParseError(t *testing.T) {
	err := stmtErr(t, `1 + 2;`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
}

func Test_Parser_Expression_ToleratesOneTrailingSemicolon(t *testing.T) {
	parseExpr(t, `1 + 2 * 3;`)
}

func Test_Parser_Expression_TrailingJunk_IsParseError(t *testing.T) {
	lex, err := NewLexer(`x 5;`)
	if err != nil {
		t.Fatalf("NewLexer error: %v", err)
	}
	_, err = NewParser(lex).ParseExpression()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *ParseError for trailing junk, got %v", err)
	}
}

func Test_Parser_MismatchedParens_IsParseError(t *testing.T) {
	lex, err := NewLexer(`(1 + 2`)
	if err != nil {
		t.Fatalf("NewLexer error: %v", err)
	}
	_, err = NewParser(lex).ParseExpression()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("want *ParseError, got %v", err)
	}
}

func Test_Parser_Idempotence_FreshInstancesAgree(t *testing.T) {
	srcs := []string{
		`1 + 2 * 3;`,
		`not a and b or c == d`,
		`"x" + 5`,
		`-(y / 2) > 3`,
	}
	for _, src := range srcs {
		a := parseExpr(t, src)
		b := parseExpr(t, src)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("parsing %q twice produced different ASTs:\n%#v\n%#v", src, a, b)
		}
	}
}
