// ast.go
//
// The AST node set and its evaluation semantics.
//
// The node family is closed: Number, Boolean, String, Variable, Assign,
// Print, Unary, Binary (arithmetic), Logical (and/or/not) and Compare.
// Nodes are immutable once constructed; a successful parse hands the
// driver exactly one root. Every node evaluates itself against the
// variable store, strict and depth-first: operand subtrees are always
// evaluated before an operator is applied (so and/or do not
// short-circuit).
//
// Two deliberate oddities of the language live here:
//
//   - The '+' string special case is *syntactic*: it looks at whether an
//     operand node is a string literal, not at the evaluated value. A
//     variable holding text therefore falls through to numeric coercion
//     and fails. Comparisons, by contrast, inspect evaluated values.
//   - Number literals keep their raw text through parsing; the
//     conversion happens here, so "1.2.3" is a fatal error on the line
//     that evaluates it.
package slate

import (
	"fmt"
	"strconv"
)

// Node is an evaluable AST node. Statements whose purpose is a side
// effect still return the value they produced; the driver ignores it.
type Node interface {
	Evaluate(env *Env) (Value, error)
}

// opLexeme renders an operator token for error messages.
func opLexeme(tt TokenType) string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LESS:
		return "<"
	case GREATER:
		return ">"
	case AND:
		return "and"
	case OR:
		return "or"
	case NOT:
		return "not"
	default:
		return "?"
	}
}

// ----- literals -----

// NumberNode holds the raw numeric text scanned by the lexer.
type NumberNode struct {
	Text string
}

func (n *NumberNode) Evaluate(_ *Env) (Value, error) {
	f, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		return Value{}, &EvalError{Msg: fmt.Sprintf("malformed number literal: %q", n.Text)}
	}
	return Num(f), nil
}

type BooleanNode struct {
	Value bool
}

func (n *BooleanNode) Evaluate(_ *Env) (Value, error) {
	return Bool(n.Value), nil
}

type StringNode struct {
	Text string
}

func (n *StringNode) Evaluate(_ *Env) (Value, error) {
	return Str(n.Text), nil
}

// ----- variables & statements -----

// VariableNode reads a binding; the name must already exist.
type VariableNode struct {
	Name string
}

func (n *VariableNode) Evaluate(env *Env) (Value, error) {
	return env.Get(n.Name)
}

// AssignNode evaluates its expression, stores the result under the
// name (inserting or overwriting), and yields the stored value.
type AssignNode struct {
	Name string
	Expr Node
}

func (n *AssignNode) Evaluate(env *Env) (Value, error) {
	v, err := n.Expr.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	env.Set(n.Name, v)
	return v, nil
}

// PrintNode evaluates its expression and writes the plain-text
// rendering to the store's writer. This is the program's single point
// of output; callers must not re-print the returned value.
type PrintNode struct {
	Expr Node
}

func (n *PrintNode) Evaluate(env *Env) (Value, error) {
	v, err := n.Expr.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	fmt.Fprintln(env.Out, toText(v))
	return v, nil
}

// ----- operators -----

// UnaryNode applies a prefix sign: '-' negates, '+' passes through.
// The operand is coerced to a number either way.
type UnaryNode struct {
	Op      TokenType // PLUS or MINUS
	Operand Node
}

func (n *UnaryNode) Evaluate(env *Env) (Value, error) {
	v, err := n.Operand.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	f, err := toNumber(v)
	if err != nil {
		return Value{}, err
	}
	if n.Op == MINUS {
		return Num(-f), nil
	}
	return Num(f), nil
}

// BinaryNode is an arithmetic operator (+ - * /).
type BinaryNode struct {
	Op          TokenType
	Left, Right Node
}

func (n *BinaryNode) Evaluate(env *Env) (Value, error) {
	// String detection is syntactic: only literal-string operand nodes
	// count, never variables that happen to hold text.
	lstr, lok := n.Left.(*StringNode)
	rstr, rok := n.Right.(*StringNode)
	if lok || rok {
		if n.Op != PLUS {
			return Value{}, &EvalError{Msg: fmt.Sprintf("operator %q is not supported for text operands", opLexeme(n.Op))}
		}
		if lok && rok {
			return Str(lstr.Text + rstr.Text), nil
		}
		lv, err := n.Left.Evaluate(env)
		if err != nil {
			return Value{}, err
		}
		rv, err := n.Right.Evaluate(env)
		if err != nil {
			return Value{}, err
		}
		return Str(toText(lv) + toText(rv)), nil
	}

	lv, err := n.Left.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	rv, err := n.Right.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	lf, err := toNumber(lv)
	if err != nil {
		return Value{}, err
	}
	rf, err := toNumber(rv)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case PLUS:
		return Num(lf + rf), nil
	case MINUS:
		return Num(lf - rf), nil
	case STAR:
		return Num(lf * rf), nil
	case SLASH:
		// Division by zero follows float semantics (Inf/NaN).
		return Num(lf / rf), nil
	default:
		return Value{}, &EvalError{Msg: fmt.Sprintf("unknown arithmetic operator %q", opLexeme(n.Op))}
	}
}

// LogicalNode is and/or/not. For NOT, only Left is set. Both operands
// of and/or are always evaluated; the tree is built before evaluation
// begins, so there is nothing to short-circuit.
type LogicalNode struct {
	Op          TokenType
	Left, Right Node
}

func (n *LogicalNode) Evaluate(env *Env) (Value, error) {
	if n.Op == NOT {
		v, err := n.Left.Evaluate(env)
		if err != nil {
			return Value{}, err
		}
		b, err := toBool(v)
		if err != nil {
			return Value{}, err
		}
		return Bool(!b), nil
	}

	lv, err := n.Left.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	rv, err := n.Right.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	lb, err := toBool(lv)
	if err != nil {
		return Value{}, err
	}
	rb, err := toBool(rv)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case AND:
		return Bool(lb && rb), nil
	case OR:
		return Bool(lb || rb), nil
	default:
		return Value{}, &EvalError{Msg: fmt.Sprintf("unknown logical operator %q", opLexeme(n.Op))}
	}
}

// CompareNode is == != < >. Unlike '+', text detection here is
// value-based: two text values support only equality, and mixing text
// with a non-text value is a type error. Everything else is compared
// numerically (booleans coerce to 0/1).
type CompareNode struct {
	Op          TokenType
	Left, Right Node
}

func (n *CompareNode) Evaluate(env *Env) (Value, error) {
	lv, err := n.Left.Evaluate(env)
	if err != nil {
		return Value{}, err
	}
	rv, err := n.Right.Evaluate(env)
	if err != nil {
		return Value{}, err
	}

	if lv.Tag == VTStr && rv.Tag == VTStr {
		switch n.Op {
		case EQ:
			return Bool(lv.Data.(string) == rv.Data.(string)), nil
		case NEQ:
			return Bool(lv.Data.(string) != rv.Data.(string)), nil
		default:
			return Value{}, &EvalError{Msg: fmt.Sprintf("operator %q is not supported for text operands", opLexeme(n.Op))}
		}
	}
	if lv.Tag == VTStr || rv.Tag == VTStr {
		return Value{}, &EvalError{Msg: "type mismatch: text compared against non-text"}
	}

	lf, err := toNumber(lv)
	if err != nil {
		return Value{}, err
	}
	rf, err := toNumber(rv)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case EQ:
		return Bool(lf == rf), nil
	case NEQ:
		return Bool(lf != rf), nil
	case LESS:
		return Bool(lf < rf), nil
	case GREATER:
		return Bool(lf > rf), nil
	default:
		return Value{}, &EvalError{Msg: fmt.Sprintf("unknown comparison operator %q", opLexeme(n.Op))}
	}
}
