// colorpeek finds color literals and custom-property references in text,
// resolves them through the workspace's stylesheet declarations, and prints
// them with equivalent representations.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/colorpeek/colorpeek/internal/log"
	"github.com/colorpeek/colorpeek/internal/version"
	"github.com/colorpeek/colorpeek/internal/workspace"
)

var rootDir string

var rootCmd = &cobra.Command{
	Use:     "colorpeek",
	Short:   "Detect and resolve colors in stylesheets and markup",
	Version: version.GetVersion(),
	// Cobra prints the error itself; usage noise on operational failures
	// just buries it
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "workspace root to index stylesheets from")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSession loads the workspace config and builds an indexed session.
func newSession() (*workspace.Session, error) {
	cfg, err := workspace.LoadConfig(rootDir)
	if err != nil {
		return nil, err
	}
	log.SetLevel(log.ParseLevel(cfg.LogLevel))

	session := workspace.NewSession(rootDir, cfg)
	if err := session.Reindex(); err != nil {
		// Unreadable stylesheets are skipped, not fatal
		log.Warn("%v", err)
	}
	return session, nil
}
