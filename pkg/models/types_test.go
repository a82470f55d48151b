package models

import "testing"

func TestEncodingLabels(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want string
	}{
		{EncodingUTF8, "UTF-8"},
		{EncodingUTF8BOM, "UTF-8 BOM"},
		{EncodingUTF16LE, "UTF-16 LE"},
		{EncodingUTF16BE, "UTF-16 BE"},
		{EncodingANSI, "ANSI"},
	}

	for _, tt := range tests {
		if got := tt.enc.String(); got != tt.want {
			t.Errorf("Encoding(%d).String() = %q, want %q", tt.enc, got, tt.want)
		}
	}
}

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument()

	if doc.ID == "" {
		t.Error("expected a generated id")
	}
	if doc.Title != "Untitled" {
		t.Errorf("Title got %q", doc.Title)
	}
	if doc.Encoding != EncodingUTF8 {
		t.Errorf("Encoding got %v", doc.Encoding)
	}
	if doc.Language != "Plain Text" {
		t.Errorf("Language got %q", doc.Language)
	}

	other := NewDocument()
	if other.ID == doc.ID {
		t.Error("expected unique ids")
	}
}

func TestDisplayTitleDirtyMarker(t *testing.T) {
	doc := NewDocument()
	if doc.DisplayTitle() != "Untitled" {
		t.Errorf("clean got %q", doc.DisplayTitle())
	}

	doc.Dirty = true
	if doc.DisplayTitle() != "Untitled *" {
		t.Errorf("dirty got %q", doc.DisplayTitle())
	}
}

func TestBaseName(t *testing.T) {
	doc := NewDocument()
	if doc.BaseName() != "Untitled" {
		t.Errorf("pathless got %q", doc.BaseName())
	}

	doc.Path = "/home/me/notes/todo.txt"
	if doc.BaseName() != "todo.txt" {
		t.Errorf("got %q", doc.BaseName())
	}
}
