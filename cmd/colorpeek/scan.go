package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/colorpeek/colorpeek/internal/scanner"
)

// languageForExt maps file extensions to the language identifiers the
// eligibility check understands.
var languageForExt = map[string]string{
	".css":    "css",
	".scss":   "scss",
	".less":   "less",
	".html":   "html",
	".htm":    "html",
	".vue":    "vue",
	".svelte": "svelte",
	".js":     "javascript",
	".jsx":    "javascriptreact",
	".ts":     "typescript",
	".tsx":    "typescriptreact",
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>...",
		Short: "List every color occurrence in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				language := languageForExt[strings.ToLower(filepath.Ext(path))]
				if err := session.DidOpen(path, language, 1, string(content)); err != nil {
					return err
				}

				occurrences, err := session.Analyze(path)
				if err != nil {
					return err
				}
				printOccurrences(cmd, path, occurrences)
			}
			return nil
		},
	}
}

func printOccurrences(cmd *cobra.Command, path string, occurrences []scanner.Occurrence) {
	for _, occ := range occurrences {
		cmd.Printf("%s:%d:%d\t%s %-26s %s\t%s\n",
			path, occ.Line+1, occ.Character+1,
			swatch(occ.Canonical), occ.Text, occ.Canonical, occ.Kind)
	}
}

// swatch renders a small colored block for terminal output.
func swatch(canonical string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(canonical)).
		Render("  ")
}
