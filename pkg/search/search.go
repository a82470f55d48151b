// Package search implements the find, replace, and go-to-line operations
// over plain text buffers. Matching is case-sensitive and literal; there is
// no pattern syntax.
package search

import (
	"errors"
	"strings"
)

// ErrLineOutOfRange is returned by GoToLine for line numbers outside the
// buffer.
var ErrLineOutOfRange = errors.New("line number out of range")

// Find scans forward from the given offset and returns the byte position of
// the first match. ok is false when the query does not occur after from.
func Find(content, query string, from int) (int, bool) {
	if query == "" {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	if from > len(content) {
		return 0, false
	}

	idx := strings.Index(content[from:], query)
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}

// FindBackward scans from one position before the cursor back to the start
// of the buffer and returns the last match before it.
func FindBackward(content, query string, before int) (int, bool) {
	if query == "" {
		return 0, false
	}
	limit := before - 1
	if limit < 0 {
		return 0, false
	}
	if limit > len(content) {
		limit = len(content)
	}

	idx := strings.LastIndex(content[:limit], query)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// Count returns the number of non-overlapping occurrences of query.
func Count(content, query string) int {
	if query == "" {
		return 0
	}
	return strings.Count(content, query)
}

// ReplaceAll substitutes every occurrence of query in the whole buffer and
// returns the new content with the replacement count. A zero count means
// the buffer came back untouched; callers report "no matches" and must not
// mark the document dirty.
func ReplaceAll(content, query, replacement string) (string, int) {
	count := Count(content, query)
	if count == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, query, replacement), count
}

// LineCount returns the number of lines in the buffer. An empty buffer has
// one line.
func LineCount(content string) int {
	return strings.Count(content, "\n") + 1
}

// GoToLine returns the byte offset of the start of the 1-based line number,
// or ErrLineOutOfRange when the number does not name a line.
func GoToLine(content string, line int) (int, error) {
	if line < 1 || line > LineCount(content) {
		return 0, ErrLineOutOfRange
	}

	offset := 0
	for i := 1; i < line; i++ {
		next := strings.IndexByte(content[offset:], '\n')
		offset += next + 1
	}
	return offset, nil
}
