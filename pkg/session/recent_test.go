package session

import "testing"

func TestRecentFilesAdd(t *testing.T) {
	r := NewRecentFiles(10)

	r.Add("/path/to/file1.txt")

	if r.Len() != 1 {
		t.Errorf("Expected 1 recent file, got %d", r.Len())
	}
	if r.Paths()[0] != "/path/to/file1.txt" {
		t.Errorf("Expected '/path/to/file1.txt', got '%s'", r.Paths()[0])
	}
}

func TestRecentFilesDuplicateMovesToFront(t *testing.T) {
	r := NewRecentFiles(10)

	r.Add("/a.txt")
	r.Add("/b.txt")
	r.Add("/a.txt") // Duplicate

	if r.Len() != 2 {
		t.Errorf("Expected 2 recent files, got %d", r.Len())
	}
	if r.Paths()[0] != "/a.txt" {
		t.Errorf("Expected /a.txt at front, got '%s'", r.Paths()[0])
	}
	if r.Paths()[1] != "/b.txt" {
		t.Errorf("Expected /b.txt at position 1, got '%s'", r.Paths()[1])
	}
}

func TestRecentFilesDedupesCleanedPaths(t *testing.T) {
	r := NewRecentFiles(10)

	r.Add("/dir/file.txt")
	r.Add("/dir//file.txt")

	if r.Len() != 1 {
		t.Errorf("Expected cleaned duplicate to collapse, got %d entries", r.Len())
	}
}

func TestRecentFilesCap(t *testing.T) {
	r := NewRecentFiles(3)

	r.Add("/1.txt")
	r.Add("/2.txt")
	r.Add("/3.txt")
	r.Add("/4.txt")

	if r.Len() != 3 {
		t.Errorf("Expected cap of 3, got %d", r.Len())
	}
	if r.Paths()[0] != "/4.txt" {
		t.Errorf("Expected newest first, got '%s'", r.Paths()[0])
	}
	if r.Paths()[2] != "/2.txt" {
		t.Errorf("Expected oldest surviving entry /2.txt, got '%s'", r.Paths()[2])
	}
}
