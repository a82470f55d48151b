package transform

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TODOLiteral is the text inserted by the insert-TODO command.
const TODOLiteral = "TODO: "

// timestampLayout is 24-hour time followed by day/month/year.
const timestampLayout = "15:04 02/01/2006"

// Timestamp returns the current time formatted for insertion at the cursor.
func Timestamp() string {
	return time.Now().Format(timestampLayout)
}

func clamp(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}

// LineBounds returns the byte range [start, end) of the line containing
// pos, excluding the trailing newline.
func LineBounds(content string, pos int) (int, int) {
	pos = clamp(pos, len(content))

	start := strings.LastIndexByte(content[:pos], '\n') + 1
	end := strings.IndexByte(content[pos:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += pos
	}
	return start, end
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// WordBounds returns the byte range of the word under or immediately before
// the cursor. Returns ok=false when the cursor touches no word.
func WordBounds(content string, pos int) (start, end int, ok bool) {
	pos = clamp(pos, len(content))

	start, end = pos, pos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(content[:start])
		if !isWordRune(r) {
			break
		}
		start -= size
	}
	for end < len(content) {
		r, size := utf8.DecodeRuneInString(content[end:])
		if !isWordRune(r) {
			break
		}
		end += size
	}
	return start, end, start != end
}

// Transpose swaps the character before the cursor with the one under it and
// advances the cursor past both. No-op at the buffer edges.
func Transpose(content string, pos int) (string, int) {
	pos = clamp(pos, len(content))
	if pos == 0 || pos >= len(content) {
		return content, pos
	}

	prev, prevSize := utf8.DecodeLastRuneInString(content[:pos])
	next, nextSize := utf8.DecodeRuneInString(content[pos:])
	if prevSize == 0 || nextSize == 0 {
		return content, pos
	}

	swapped := content[:pos-prevSize] + string(next) + string(prev) + content[pos+nextSize:]
	return swapped, pos - prevSize + nextSize + prevSize
}

var bracketPairs = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

var bracketOpeners = map[byte]byte{
	')': '(',
	']': '[',
	'}': '{',
}

// MatchBracket returns the position of the bracket matching the one under
// the cursor: forward for an opener, backward for a closer. Returns ok=false
// when the cursor is not on a bracket or no match exists.
func MatchBracket(content string, pos int) (int, bool) {
	if pos < 0 || pos >= len(content) {
		return 0, false
	}

	ch := content[pos]
	if closer, isOpen := bracketPairs[ch]; isOpen {
		depth := 0
		for i := pos; i < len(content); i++ {
			switch content[i] {
			case ch:
				depth++
			case closer:
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}
		return 0, false
	}

	if opener, isClose := bracketOpeners[ch]; isClose {
		depth := 0
		for i := pos; i >= 0; i-- {
			switch content[i] {
			case ch:
				depth++
			case opener:
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}
		return 0, false
	}

	return 0, false
}

// DuplicateLine copies the current line above or below itself. The cursor
// keeps its column; duplicating below moves it onto the copy.
func DuplicateLine(content string, pos int, below bool) (string, int) {
	start, end := LineBounds(content, pos)
	line := content[start:end]

	out := content[:end] + "\n" + line + content[end:]
	if below {
		return out, pos + (end - start) + 1
	}
	return out, pos
}

// DuplicateRange copies the selected range in place, directly after itself.
func DuplicateRange(content string, start, end int) (string, int) {
	start = clamp(start, len(content))
	end = clamp(end, len(content))
	if start > end {
		start, end = end, start
	}
	return content[:end] + content[start:end] + content[end:], end + (end - start)
}

// DeleteLine removes the current line including its newline. The cursor
// lands at the start of the line that takes its place.
func DeleteLine(content string, pos int) (string, int) {
	start, end := LineBounds(content, pos)

	if end < len(content) {
		end++ // take the trailing newline
	} else if start > 0 {
		start-- // last line: take the preceding newline instead
	}
	return content[:start] + content[end:], clamp(start, len(content)-(end-start))
}

// MoveLine swaps the current line with its neighbor above (delta < 0) or
// below (delta > 0). No-op past the buffer edges. The cursor keeps its
// column within the moved line.
func MoveLine(content string, pos int, delta int) (string, int) {
	start, end := LineBounds(content, pos)
	col := pos - start
	line := content[start:end]

	if delta < 0 {
		if start == 0 {
			return content, pos
		}
		prevStart, _ := LineBounds(content, start-1)
		prev := content[prevStart : start-1]
		out := content[:prevStart] + line + "\n" + prev + content[end:]
		return out, prevStart + col
	}

	if end >= len(content) {
		return content, pos
	}
	_, nextEnd := LineBounds(content, end+1)
	next := content[end+1 : nextEnd]
	out := content[:start] + next + "\n" + line + content[nextEnd:]
	newStart := start + len(next) + 1
	return out, newStart + col
}

// InsertAt splices text into content at pos and returns the cursor position
// after the insertion.
func InsertAt(content string, pos int, text string) (string, int) {
	pos = clamp(pos, len(content))
	return content[:pos] + text + content[pos:], pos + len(text)
}
