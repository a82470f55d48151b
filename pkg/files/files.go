package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tabpad/tabpad-cli/pkg/models"
)

// Read loads a whole text file, detecting its encoding from the byte-order
// mark (see DetectEncoding for the no-BOM rules).
func Read(path string) (string, models.Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.EncodingUTF8, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	text, enc, err := Decode(data)
	if err != nil {
		return "", enc, fmt.Errorf("failed to decode file %s: %w", path, err)
	}

	return text, enc, nil
}

// Write saves text to path using the given encoding. The write is
// whole-file; there is no partial or streaming I/O.
func Write(path string, text string, enc models.Encoding) error {
	data, err := Encode(text, enc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

// languages maps file extensions to the display label shown in the status
// bar. Informational only; nothing dispatches on it.
var languages = map[string]string{
	".go":   "Go",
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".rb":   "Ruby",
	".rs":   "Rust",
	".c":    "C",
	".h":    "C",
	".cpp":  "C++",
	".java": "Java",
	".sh":   "Shell",
	".md":   "Markdown",
	".json": "JSON",
	".yaml": "YAML",
	".yml":  "YAML",
	".toml": "TOML",
	".xml":  "XML",
	".html": "HTML",
	".css":  "CSS",
	".sql":  "SQL",
	".txt":  "Plain Text",
}

// DetectLanguage returns the display language for a file path.
func DetectLanguage(path string) string {
	if lang, ok := languages[filepath.Ext(path)]; ok {
		return lang
	}
	return "Plain Text"
}
