// printer.go
//
// REPL-facing rendering of runtime values. FormatValue is what the
// driver prints for expression results: strings are shown quoted so the
// reader can tell `"5"` from `5`. Print statements go through toText
// (value.go) instead, which renders strings raw.
package slate

import "strconv"

// FormatValue returns the display string for a runtime value.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTStr:
		return strconv.Quote(v.Data.(string))
	default:
		return "<unknown>"
	}
}
