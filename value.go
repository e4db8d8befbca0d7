// value.go
//
// Runtime values and coercions.
//
// A Value is the universal dynamically-tagged carrier produced by
// evaluation. Only evaluation creates Values; the lexer and parser keep
// literal representations (numeric text, decoded strings) and never
// coerce. The three coercion functions below are the *only* places a
// value changes kind, so every coercion failure mode is enumerable.
package slate

import (
	"fmt"
	"strconv"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNum  ValueTag = iota // float64
	VTBool                 // bool
	VTStr                  // string
)

// Value is a tagged runtime value. The tag determines which Go type
// Data holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Primitive constructors.
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// String renders a debug representation (strings quoted).
func (v Value) String() string {
	switch v.Tag {
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	default:
		return "<unknown>"
	}
}

// toNumber coerces v to a float64. Booleans coerce to 0/1; text never
// coerces and fails with an EvalError.
func toNumber(v Value) (float64, error) {
	switch v.Tag {
	case VTNum:
		return v.Data.(float64), nil
	case VTBool:
		if v.Data.(bool) {
			return 1, nil
		}
		return 0, nil
	case VTStr:
		return 0, &EvalError{Msg: "cannot convert text to a number"}
	default:
		return 0, &EvalError{Msg: "cannot convert value to a number"}
	}
}

// toBool coerces v to a boolean. Numbers are truthy when non-zero;
// text never coerces.
func toBool(v Value) (bool, error) {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool), nil
	case VTNum:
		return v.Data.(float64) != 0, nil
	case VTStr:
		return false, &EvalError{Msg: "cannot convert text to a boolean"}
	default:
		return false, &EvalError{Msg: "cannot convert value to a boolean"}
	}
}

// toText renders v as plain text. This is the rendering used by print
// and by textual '+' concatenation: strings are raw (unquoted).
func toText(v Value) string {
	switch v.Tag {
	case VTStr:
		return v.Data.(string)
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	default:
		return "<unknown>"
	}
}

// formatNumber renders a float without a trailing ".0" for whole
// values, so `print 5 + 1;` writes "6".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
