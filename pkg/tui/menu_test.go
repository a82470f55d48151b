package tui

import "testing"

func testMenuItems() []MenuItem {
	return []MenuItem{
		{ID: "a", Label: "UPPERCASE"},
		{ID: "b", Label: "lowercase"},
		{ID: "c", Label: "Sort Lines Ascending"},
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenu()
	m.Show("Test", testMenuItems())

	item, ok := m.Selected()
	if !ok || item.ID != "a" {
		t.Errorf("initial selection got %v", item)
	}

	m.MoveDown()
	m.MoveDown()
	if item, _ := m.Selected(); item.ID != "c" {
		t.Errorf("after two downs got %v", item)
	}

	// Clamped at the bottom
	m.MoveDown()
	if item, _ := m.Selected(); item.ID != "c" {
		t.Errorf("bottom clamp got %v", item)
	}

	m.MoveUp()
	if item, _ := m.Selected(); item.ID != "b" {
		t.Errorf("after up got %v", item)
	}
}

func TestMenuFilter(t *testing.T) {
	m := NewMenu()
	m.Show("Test", testMenuItems())

	m.TypeFilter("sort")
	item, ok := m.Selected()
	if !ok || item.ID != "c" {
		t.Errorf("filter match got %v, %v", item, ok)
	}

	m.TypeFilter("zzz")
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection with no matches")
	}

	m.BackspaceFilter()
	m.BackspaceFilter()
	m.BackspaceFilter()
	if item, ok := m.Selected(); !ok || item.ID != "c" {
		t.Errorf("after backspace got %v, %v", item, ok)
	}
}

func TestMenuFilterCaseInsensitive(t *testing.T) {
	m := NewMenu()
	m.Show("Test", testMenuItems())

	m.TypeFilter("UPPER")
	if item, ok := m.Selected(); !ok || item.ID != "a" {
		t.Errorf("got %v, %v", item, ok)
	}
}
