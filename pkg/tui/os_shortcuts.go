package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	shortcut = s.Get()

	if GetOS() == OSLinux {
		switch shortcut {
		case "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "ctrl+q":
			warning = "(may need: stty -ixon)"
		case "ctrl+z":
			warning = "(caution: suspends process)"
		}
	}

	return shortcut, warning
}

// Shortcuts contains the notepad key bindings. The editing keys stay
// the same everywhere; only the ones with terminal conflicts vary.
var Shortcuts = struct {
	// File operations
	NewTab   ShortcutKey
	Open     ShortcutKey
	Save     ShortcutKey
	CloseTab ShortcutKey
	Recent   ShortcutKey

	// Tab navigation
	NextTab     ShortcutKey
	PrevTab     ShortcutKey
	MoveTabFwd  ShortcutKey
	MoveTabBack ShortcutKey
	DupTab      ShortcutKey
	Reopen      ShortcutKey
	TabMenu     ShortcutKey

	// Search
	Find     ShortcutKey
	FindNext ShortcutKey
	FindPrev ShortcutKey
	Replace  ShortcutKey
	GoToLine ShortcutKey

	// Editing
	Undo         ShortcutKey
	Redo         ShortcutKey
	Transform    ShortcutKey
	Encoding     ShortcutKey
	SelectAll    ShortcutKey
	SetMark      ShortcutKey
	SelectWord   ShortcutKey
	SelectLine   ShortcutKey
	Cut          ShortcutKey
	Copy         ShortcutKey
	Paste        ShortcutKey
	DeleteLine   ShortcutKey
	DupLine      ShortcutKey
	DupLineAbove ShortcutKey
	MoveLnUp     ShortcutKey
	MoveLnDown   ShortcutKey
	Transpose    ShortcutKey
	Bracket      ShortcutKey
	InsertTodo   ShortcutKey
	InsertTime   ShortcutKey

	// System
	ToggleStatus ShortcutKey
	Help         ShortcutKey
	Quit         ShortcutKey
	Kill         ShortcutKey
}{
	NewTab:   ShortcutKey{Default: "ctrl+n"},
	Open:     ShortcutKey{Default: "ctrl+o"},
	Save:     ShortcutKey{Default: "ctrl+s"},
	CloseTab: ShortcutKey{Default: "ctrl+w"},
	Recent:   ShortcutKey{Default: "ctrl+r"},

	NextTab:     ShortcutKey{Default: "ctrl+right"},
	PrevTab:     ShortcutKey{Default: "ctrl+left"},
	MoveTabFwd:  ShortcutKey{Default: "alt+right"},
	MoveTabBack: ShortcutKey{Default: "alt+left"},
	DupTab:      ShortcutKey{Default: "ctrl+d"},
	Reopen:      ShortcutKey{Default: "ctrl+u"},
	TabMenu:     ShortcutKey{Default: "ctrl+b"},

	Find:     ShortcutKey{Default: "ctrl+f"},
	FindNext: ShortcutKey{Default: "f3"},
	FindPrev: ShortcutKey{Default: "shift+f3"},
	Replace:  ShortcutKey{Default: "ctrl+h"},
	GoToLine: ShortcutKey{Default: "ctrl+g"},

	// ctrl+z suspends the process on Linux terminals, so undo moves to
	// the alt layer there
	Undo:         ShortcutKey{Linux: "alt+z", Default: "ctrl+z"},
	Redo:         ShortcutKey{Default: "alt+u"},
	Transform:    ShortcutKey{Default: "ctrl+t"},
	Encoding:     ShortcutKey{Default: "ctrl+e"},
	SelectAll:    ShortcutKey{Default: "ctrl+a"},
	SetMark:      ShortcutKey{Default: "ctrl+@"},
	SelectWord:   ShortcutKey{Default: "alt+w"},
	SelectLine:   ShortcutKey{Default: "alt+l"},
	Cut:          ShortcutKey{Default: "ctrl+x"},
	Copy:         ShortcutKey{Default: "ctrl+y"},
	Paste:        ShortcutKey{Default: "ctrl+v"},
	DeleteLine:   ShortcutKey{Default: "ctrl+k"},
	DupLine:      ShortcutKey{Default: "alt+d"},
	DupLineAbove: ShortcutKey{Default: "alt+D"},
	MoveLnUp:     ShortcutKey{Default: "alt+up"},
	MoveLnDown:   ShortcutKey{Default: "alt+down"},
	Transpose:    ShortcutKey{Default: "alt+x"},
	Bracket:      ShortcutKey{Default: "alt+m"},
	InsertTodo:   ShortcutKey{Default: "alt+i"},
	InsertTime:   ShortcutKey{Default: "alt+t"},

	ToggleStatus: ShortcutKey{Default: "alt+s"},
	Help:         ShortcutKey{Default: "f1"},
	Quit:         ShortcutKey{Default: "ctrl+q"},
	Kill:         ShortcutKey{Default: "ctrl+c"},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	shortcut := key.Get()
	if GetOS() == OSMac {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+@", "^space")
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	if strings.HasPrefix(shortcut, "f") && len(shortcut) <= 3 {
		return strings.ToUpper(shortcut)
	}

	return shortcut
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S and Ctrl+Q in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}
