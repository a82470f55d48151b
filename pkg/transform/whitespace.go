package transform

import (
	"regexp"
	"strings"
)

// TrimLeading removes leading whitespace from every line.
func TrimLeading(s string) string {
	return eachLine(s, func(line string) string {
		return strings.TrimLeft(line, " \t")
	})
}

// TrimTrailing removes trailing whitespace from every line.
func TrimTrailing(s string) string {
	return eachLine(s, func(line string) string {
		return strings.TrimRight(line, " \t")
	})
}

// TrimBoth removes whitespace from both ends of every line.
func TrimBoth(s string) string {
	return eachLine(s, strings.TrimSpace)
}

// TabsToSpaces returns a transform replacing each tab with width spaces.
func TabsToSpaces(width int) Func {
	spaces := strings.Repeat(" ", width)
	return func(s string) string {
		return strings.ReplaceAll(s, "\t", spaces)
	}
}

// SpacesToTabs returns a transform replacing each run of width spaces with
// a tab.
func SpacesToTabs(width int) Func {
	spaces := strings.Repeat(" ", width)
	return func(s string) string {
		return strings.ReplaceAll(s, spaces, "\t")
	}
}

// Indent returns a transform prefixing every non-blank line with width
// spaces.
func Indent(width int) Func {
	prefix := strings.Repeat(" ", width)
	return func(s string) string {
		return eachLine(s, func(line string) string {
			if strings.TrimSpace(line) == "" {
				return line
			}
			return prefix + line
		})
	}
}

// Outdent returns a transform removing one leading tab or up to width
// leading spaces from every line.
func Outdent(width int) Func {
	return func(s string) string {
		return eachLine(s, func(line string) string {
			if strings.HasPrefix(line, "\t") {
				return line[1:]
			}
			for i := 0; i < width; i++ {
				if !strings.HasPrefix(line, " ") {
					break
				}
				line = line[1:]
			}
			return line
		})
	}
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// CollapseWhitespace squeezes every run of spaces and tabs to a single
// space, line by line.
func CollapseWhitespace(s string) string {
	return eachLine(s, func(line string) string {
		return whitespaceRun.ReplaceAllString(line, " ")
	})
}

// StripBOM removes a leading byte-order-mark character from the operand.
func StripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

var bareNumber = regexp.MustCompile(`\b\d+\b`)

// ZeroPadNumbers pads bare integer tokens to width 3 ("7" becomes "007").
func ZeroPadNumbers(s string) string {
	return bareNumber.ReplaceAllStringFunc(s, func(tok string) string {
		if len(tok) >= 3 {
			return tok
		}
		return strings.Repeat("0", 3-len(tok)) + tok
	})
}
