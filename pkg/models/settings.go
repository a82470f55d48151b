package models

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	UI     UISettings     `yaml:"ui"`
	Files  FileSettings   `yaml:"files"`
}

// EditorSettings controls editing behavior
type EditorSettings struct {
	TabWidth int  `yaml:"tab_width"` // spaces per tab for tabs<->spaces and indent
	WordWrap bool `yaml:"word_wrap"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowStatusBar bool `yaml:"show_status_bar"`
}

// FileSettings controls file handling
type FileSettings struct {
	MaxRecent int `yaml:"max_recent"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			TabWidth: 4,
			WordWrap: false,
		},
		UI: UISettings{
			ShowStatusBar: true,
		},
		Files: FileSettings{
			MaxRecent: 10,
		},
	}
}
