package utils

import "strings"

// CountLines returns the number of lines in content. An empty buffer counts
// as one line, matching what the status bar shows for a fresh document.
func CountLines(content string) int {
	return strings.Count(content, "\n") + 1
}

// CountWords returns the number of whitespace-separated words.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountChars returns the number of characters (runes, not bytes).
func CountChars(content string) int {
	return len([]rune(content))
}

// CursorPosition converts a byte offset into 1-based line and column
// numbers for the "Ln X, Col Y" status readout.
func CursorPosition(content string, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	before := content[:offset]
	line = strings.Count(before, "\n") + 1
	lastNL := strings.LastIndexByte(before, '\n')
	col = len([]rune(before[lastNL+1:])) + 1
	return line, col
}
