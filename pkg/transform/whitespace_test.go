package transform

import "testing"

func TestTrims(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		in   string
		want string
	}{
		{"leading", TrimLeading, "  a\n\tb", "a\nb"},
		{"trailing", TrimTrailing, "a  \nb\t", "a\nb"},
		{"both", TrimBoth, "  hi  \n\tyo\t", "hi\nyo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabsAndSpaces(t *testing.T) {
	toSpaces := TabsToSpaces(4)
	if got := toSpaces("\ta\tb"); got != "    a    b" {
		t.Errorf("TabsToSpaces got %q", got)
	}

	toTabs := SpacesToTabs(4)
	if got := toTabs("    a"); got != "\ta" {
		t.Errorf("SpacesToTabs got %q", got)
	}

	// Round trip at matching width
	if got := toTabs(toSpaces("\tx")); got != "\tx" {
		t.Errorf("round trip got %q", got)
	}
}

func TestIndentOutdent(t *testing.T) {
	indent := Indent(2)
	if got := indent("a\n\nb"); got != "  a\n\n  b" {
		t.Errorf("Indent got %q", got)
	}

	outdent := Outdent(2)
	if got := outdent("  a\n\tb\n c\nd"); got != "a\nb\nc\nd" {
		t.Errorf("Outdent got %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("a   b\t\tc\nd  e"); got != "a b c\nd e" {
		t.Errorf("got %q", got)
	}
}

func TestStripBOM(t *testing.T) {
	if got := StripBOM("\uFEFFtext"); got != "text" {
		t.Errorf("got %q", got)
	}
	if got := StripBOM("text"); got != "text" {
		t.Errorf("no-op got %q", got)
	}
	// Only the leading BOM comes off
	if got := StripBOM("a\uFEFFb"); got != "a\uFEFFb" {
		t.Errorf("interior BOM got %q", got)
	}
}

func TestZeroPadNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"item 7", "item 007"},
		{"v42 and 100", "v42 and 100"},
		{"7 77 777 7777", "007 077 777 7777"},
		{"no digits", "no digits"},
	}

	for _, tt := range tests {
		if got := ZeroPadNumbers(tt.in); got != tt.want {
			t.Errorf("ZeroPadNumbers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWraps(t *testing.T) {
	if got := Wrap("(", ")")("a\nb"); got != "(a\nb)" {
		t.Errorf("parens got %q", got)
	}
	if got := Wrap("`", "`")("cmd"); got != "`cmd`" {
		t.Errorf("backticks got %q", got)
	}
}

func TestQuoteNormalization(t *testing.T) {
	if got := QuotesToDouble("it's 'fine'"); got != `it"s "fine"` {
		t.Errorf("to double got %q", got)
	}
	if got := QuotesToSingle(`say "hi"`); got != "say 'hi'" {
		t.Errorf("to single got %q", got)
	}
}
