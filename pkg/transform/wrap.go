package transform

import "strings"

// Wrap returns a transform surrounding the whole operand with the given
// open and close strings.
func Wrap(open, close string) Func {
	return func(s string) string {
		return open + s + close
	}
}

// QuotesToDouble rewrites single quotes as double quotes.
func QuotesToDouble(s string) string {
	return strings.ReplaceAll(s, "'", `"`)
}

// QuotesToSingle rewrites double quotes as single quotes.
func QuotesToSingle(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
