package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorpeek/colorpeek/internal/registry"
)

func newPaletteCmd() *cobra.Command {
	var withVariants bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the deduplicated color palette of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			for _, entry := range session.Palette() {
				cmd.Printf("%s %s\t%s\n",
					swatch(entry.Canonical), entry.Canonical,
					strings.Join(entry.Properties, " "))

				if !withVariants {
					continue
				}
				for _, name := range entry.Properties {
					variants := session.ThemeVariants(name)
					printVariant(cmd, "dark", variants.Dark)
					printVariant(cmd, "light", variants.Light)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withVariants, "variants", false, "also print dark/light theme overrides")
	return cmd
}

func printVariant(cmd *cobra.Command, label string, decl *registry.PropertyDeclaration) {
	if decl == nil {
		return
	}
	cmd.Printf("    %s: %s = %s  (%s)\n", label, decl.Name, decl.Value, decl.Selector)
}
