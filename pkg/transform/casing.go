package transform

import (
	"strings"
	"unicode"
)

// Upper converts the operand to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Lower converts the operand to lower case.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Title capitalizes the first letter of every word and lowercases the rest,
// line by line, preserving spacing.
func Title(s string) string {
	return eachLine(s, func(line string) string {
		var b strings.Builder
		startOfWord := true
		for _, r := range line {
			if unicode.IsSpace(r) {
				startOfWord = true
				b.WriteRune(r)
				continue
			}
			if startOfWord {
				b.WriteRune(unicode.ToUpper(r))
				startOfWord = false
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		return b.String()
	})
}

// Sentence lowercases each line and capitalizes its first letter.
func Sentence(s string) string {
	return eachLine(s, func(line string) string {
		lowered := strings.ToLower(line)
		for i, r := range lowered {
			if unicode.IsLetter(r) {
				return lowered[:i] + string(unicode.ToUpper(r)) + lowered[i+len(string(r)):]
			}
		}
		return lowered
	})
}

// SwapCase flips the case of every letter.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// splitWords breaks an identifier into words on hyphens, underscores, and
// whitespace.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
}

// SnakeCase rewrites the operand as lower_snake_case.
func SnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// CamelCase rewrites the operand as camelCase.
func CamelCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		if i == 0 {
			words[i] = strings.ToLower(w)
		} else {
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// PascalCase rewrites the operand as PascalCase.
func PascalCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, "")
}

// KebabCase rewrites the operand as kebab-case.
func KebabCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// UpperSnakeCase rewrites the operand as UPPER_SNAKE_CASE.
func UpperSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
