package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabpad/tabpad-cli/internal/cli"
	"github.com/tabpad/tabpad-cli/pkg/files"
	"github.com/tabpad/tabpad-cli/pkg/models"
	"github.com/tabpad/tabpad-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tabpad [files...]",
	Short: "Terminal notepad with tabs, text transforms, and encoding support",
	Long: `Tabpad is a terminal notepad. It keeps multiple documents open in tabs,
detects and converts file encodings (UTF-8, UTF-16, ANSI), and ships a
catalog of text transforms for cases, lines, and whitespace.

Any file paths given on the command line are opened as tabs.`,
	Run: func(cmd *cobra.Command, args []string) {
		var paths []string
		for _, arg := range args {
			path := cli.ExpandPath(arg)
			if err := cli.ValidateFilePath(path); err != nil {
				cli.PrintError("%v", err)
				os.Exit(1)
			}
			paths = append(paths, path)
		}

		settings, err := files.ReadSettings()
		if err != nil {
			// A missing settings file is the normal first run
			if !errors.Is(err, os.ErrNotExist) {
				cli.PrintWarning("failed to read settings, using defaults: %v", err)
			}
			settings = models.DefaultSettings()
		}

		app := tui.NewApp(settings, paths)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tabpad %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
