package transform

import "testing"

func TestSorting(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   string
		want string
	}{
		{"sort ascending", SortAscending, "b\na\nc", "a\nb\nc"},
		{"sort descending", SortDescending, "b\na\nc", "c\nb\na"},
		{"sort by length", SortByLength, "ccc\na\nbb", "a\nbb\nccc"},
		{"sort by length stable", SortByLength, "bb\naa\nc", "c\nbb\naa"},
		{"reverse", ReverseLines, "c\na\nb", "b\na\nc"},
		{"reverse single", ReverseLines, "only", "only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineFilters(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   string
		want string
	}{
		{"dedupe keeps first", DedupeLines, "a\nb\na\nc\nb", "a\nb\nc"},
		{"dedupe exact match only", DedupeLines, "a\nA\na", "a\nA"},
		{"remove blank", RemoveBlankLines, "a\n\n  \nb", "a\nb"},
		{"join", JoinLines, "  one  \n\ttwo\nthree ", "one two three"},
		{"join skips blanks", JoinLines, "a\n\nb", "a b"},
		{"split commas", SplitCommas, "a, b ,c", "a\nb\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumbering(t *testing.T) {
	in := "alpha\nbeta"
	numbered := NumberLines(in)
	if numbered != "1: alpha\n2: beta" {
		t.Errorf("NumberLines got %q", numbered)
	}
	if got := UnnumberLines(numbered); got != in {
		t.Errorf("UnnumberLines got %q, want %q", got, in)
	}

	// Lines without a numeric prefix pass through
	if got := UnnumberLines("no prefix"); got != "no prefix" {
		t.Errorf("got %q", got)
	}
}

func TestAlignAssignments(t *testing.T) {
	in := "x = 1\nlonger   = 2\nno assign\ny= 3"
	want := "x      = 1\nlonger = 2\nno assign\ny      = 3"
	if got := AlignAssignments(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToggleComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"add", "a\nb", "# a\n# b"},
		{"add skips blank", "a\n\nb", "# a\n\n# b"},
		{"remove when all commented", "# a\n# b", "a\nb"},
		{"remove bare hash", "#a\n# b", "a\nb"},
		{"mixed adds", "# a\nb", "# # a\n# b"},
		{"preserves indent on remove", "  # a", "  a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToggleComment(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggleBullets(t *testing.T) {
	if got := ToggleBullets("one\ntwo"); got != "- one\n- two" {
		t.Errorf("add got %q", got)
	}
	if got := ToggleBullets("- one\n- two"); got != "one\ntwo" {
		t.Errorf("remove got %q", got)
	}
	// One unmarked line means the whole block gains markers
	if got := ToggleBullets("- one\ntwo"); got != "- - one\n- two" {
		t.Errorf("mixed got %q", got)
	}
}

func TestToggleNumberedList(t *testing.T) {
	if got := ToggleNumberedList("one\ntwo"); got != "1. one\n2. two" {
		t.Errorf("add got %q", got)
	}
	if got := ToggleNumberedList("1. one\n2. two"); got != "one\ntwo" {
		t.Errorf("remove got %q", got)
	}
	// Blank lines do not consume ordinals
	if got := ToggleNumberedList("one\n\ntwo"); got != "1. one\n\n2. two" {
		t.Errorf("blank got %q", got)
	}
}
