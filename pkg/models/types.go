package models

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Encoding identifies the codec used when a document is written to disk.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingANSI
)

// String returns the label shown in the status bar and encoding menu.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF8BOM:
		return "UTF-8 BOM"
	case EncodingUTF16LE:
		return "UTF-16 LE"
	case EncodingUTF16BE:
		return "UTF-16 BE"
	case EncodingANSI:
		return "ANSI"
	default:
		return "UTF-8"
	}
}

// Encodings lists all selectable encodings in menu order.
func Encodings() []Encoding {
	return []Encoding{
		EncodingUTF8,
		EncodingUTF8BOM,
		EncodingUTF16LE,
		EncodingUTF16BE,
		EncodingANSI,
	}
}

// Document is one open tab: a text buffer plus its file metadata.
type Document struct {
	ID       string
	Title    string
	Content  string
	Path     string // empty means never saved
	Dirty    bool
	Encoding Encoding
	Language string // display only, e.g. "Plain Text"
}

// NewDocument creates a blank untitled document.
func NewDocument() *Document {
	return &Document{
		ID:       uuid.NewString(),
		Title:    "Untitled",
		Encoding: EncodingUTF8,
		Language: "Plain Text",
	}
}

// DisplayTitle returns the tab title with the unsaved-changes marker.
func (d *Document) DisplayTitle() string {
	if d.Dirty {
		return d.Title + " *"
	}
	return d.Title
}

// BaseName returns the title derived from the document's path, or "Untitled".
func (d *Document) BaseName() string {
	if d.Path == "" {
		return "Untitled"
	}
	return filepath.Base(d.Path)
}

// ClosedTab is the snapshot pushed when a tab is closed, enough to
// restore it via reopen.
type ClosedTab struct {
	Title    string
	Content  string
	Path     string
	Encoding Encoding
}
