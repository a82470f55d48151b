package transform

import "testing"

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range Catalog {
		if cmd.ID == "" {
			t.Error("catalog entry with empty id")
		}
		if cmd.Name == "" {
			t.Errorf("catalog entry %s with empty name", cmd.ID)
		}
		if cmd.Fn == nil {
			t.Errorf("catalog entry %s with nil function", cmd.ID)
		}
		if seen[cmd.ID] {
			t.Errorf("duplicate catalog id %s", cmd.ID)
		}
		seen[cmd.ID] = true
	}
}

func TestLookup(t *testing.T) {
	cmd, ok := Lookup("lines.sort-asc")
	if !ok {
		t.Fatal("expected lines.sort-asc in catalog")
	}
	if got := cmd.Fn("b\na"); got != "a\nb" {
		t.Errorf("got %q", got)
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestApplyRange(t *testing.T) {
	// Selection-scoped: only the range is transformed
	got := ApplyRange("aaa BBB ccc", 4, 7, Lower)
	if got != "aaa bbb ccc" {
		t.Errorf("got %q", got)
	}

	// Whole buffer
	if got := ApplyRange("ab", 0, 2, Upper); got != "AB" {
		t.Errorf("got %q", got)
	}

	// Out-of-range indexes clamp instead of panicking
	if got := ApplyRange("ab", -5, 99, Upper); got != "AB" {
		t.Errorf("clamped got %q", got)
	}

	// Inverted ranges are normalized
	if got := ApplyRange("ab cd", 5, 3, Upper); got != "ab CD" {
		t.Errorf("inverted got %q", got)
	}
}

func TestApplyRangeIdentityStillReplaces(t *testing.T) {
	// The dispatcher never diffs; an identity transform round-trips the
	// operand unchanged and the caller still marks the document dirty.
	identity := func(s string) string { return s }
	if got := ApplyRange("same", 0, 4, identity); got != "same" {
		t.Errorf("got %q", got)
	}
}
