package transform

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// SortAscending sorts lines in ascending order. The sort is stable.
func SortAscending(s string) string {
	lines := strings.Split(s, "\n")
	sort.SliceStable(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return strings.Join(lines, "\n")
}

// SortDescending sorts lines in descending order. The sort is stable.
func SortDescending(s string) string {
	lines := strings.Split(s, "\n")
	sort.SliceStable(lines, func(i, j int) bool { return lines[i] > lines[j] })
	return strings.Join(lines, "\n")
}

// SortByLength sorts lines shortest first. Equal-length lines keep their
// relative order.
func SortByLength(s string) string {
	lines := strings.Split(s, "\n")
	sort.SliceStable(lines, func(i, j int) bool { return len(lines[i]) < len(lines[j]) })
	return strings.Join(lines, "\n")
}

// ReverseLines reverses the line order.
func ReverseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

// DedupeLines removes duplicate lines by exact string equality, keeping the
// first occurrence in place.
func DedupeLines(s string) string {
	lines := strings.Split(s, "\n")
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, line := range lines {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RemoveBlankLines drops lines containing only whitespace.
func RemoveBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// JoinLines merges all lines into one, trimming each and joining with a
// single space.
func JoinLines(s string) string {
	lines := strings.Split(s, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// SplitCommas breaks the operand at commas, one trimmed part per line.
func SplitCommas(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "\n")
}

// NumberLines prefixes each line with its ordinal ("N: ").
func NumberLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%d: %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}

var lineNumberPattern = regexp.MustCompile(`^\d+: `)

// UnnumberLines strips the ordinal prefixes NumberLines adds.
func UnnumberLines(s string) string {
	return eachLine(s, func(line string) string {
		return lineNumberPattern.ReplaceAllString(line, "")
	})
}

// AlignAssignments pads the left-hand side of "=" assignments so every "="
// lands on the rightmost column any line needs. Lines without "=" pass
// through untouched.
func AlignAssignments(s string) string {
	lines := strings.Split(s, "\n")

	width := 0
	for _, line := range lines {
		if idx := strings.Index(line, "="); idx >= 0 {
			lhs := strings.TrimRight(line[:idx], " \t")
			if len(lhs) > width {
				width = len(lhs)
			}
		}
	}

	for i, line := range lines {
		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}
		lhs := strings.TrimRight(line[:idx], " \t")
		rhs := strings.TrimLeft(line[idx+1:], " \t")
		lines[i] = fmt.Sprintf("%-*s = %s", width, lhs, rhs)
	}
	return strings.Join(lines, "\n")
}

// ToggleComment adds a "# " prefix to every non-blank line, or removes it
// when all non-blank lines are already commented.
func ToggleComment(s string) string {
	lines := strings.Split(s, "\n")

	allCommented := true
	anyContent := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		anyContent = true
		if !strings.HasPrefix(trimmed, "#") {
			allCommented = false
			break
		}
	}

	if anyContent && allCommented {
		for i, line := range lines {
			trimmed := strings.TrimLeft(line, " \t")
			if trimmed == "" {
				continue
			}
			indent := line[:len(line)-len(trimmed)]
			trimmed = strings.TrimPrefix(trimmed, "# ")
			trimmed = strings.TrimPrefix(trimmed, "#")
			lines[i] = indent + trimmed
		}
	} else {
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

var bulletPattern = regexp.MustCompile(`^(\s*)- `)

// ToggleBullets adds a "- " list marker to every non-blank line, or removes
// the markers when all non-blank lines already carry one.
func ToggleBullets(s string) string {
	return toggleListMarker(s, bulletPattern, func(i int) string { return "- " })
}

var numberedPattern = regexp.MustCompile(`^(\s*)\d+\. `)

// ToggleNumberedList adds "N. " markers to every non-blank line, or removes
// them when all non-blank lines already carry one.
func ToggleNumberedList(s string) string {
	return toggleListMarker(s, numberedPattern, func(i int) string { return fmt.Sprintf("%d. ", i) })
}

// toggleListMarker implements the shared list-toggle rule: the markers come
// off only when every non-blank line matches the pattern.
func toggleListMarker(s string, pattern *regexp.Regexp, marker func(ordinal int) string) string {
	lines := strings.Split(s, "\n")

	allMarked := true
	anyContent := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		anyContent = true
		if !pattern.MatchString(line) {
			allMarked = false
			break
		}
	}

	if anyContent && allMarked {
		for i, line := range lines {
			lines[i] = pattern.ReplaceAllString(line, "$1")
		}
		return strings.Join(lines, "\n")
	}

	ordinal := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ordinal++
		lines[i] = marker(ordinal) + line
	}
	return strings.Join(lines, "\n")
}
